package models

// Day is one teaching day of the fixed weekly grid.
type Day struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// TimeSlot is one bookable period. Slots belong to a program; different
// programs may run different period grids.
type TimeSlot struct {
	ID        string  `db:"id" json:"id"`
	StartTime string  `db:"start_time" json:"start_time"`
	EndTime   string  `db:"end_time" json:"end_time"`
	ProgramID *string `db:"program_id" json:"program_id,omitempty"`
}
