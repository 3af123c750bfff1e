package models

// Staff is a teacher eligible for timetable assignment. Staff belong to a
// department, which may differ from the department whose class they teach.
type Staff struct {
	ID           string `db:"id" json:"id"`
	FullName     string `db:"full_name" json:"full_name"`
	DepartmentID string `db:"department_id" json:"department_id"`
}

// Location is a bookable room owned by a department.
type Location struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Capacity     int    `db:"capacity" json:"capacity"`
	DepartmentID string `db:"department_id" json:"department_id"`
}
