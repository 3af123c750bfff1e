package models

import "time"

// Entry is one scheduled (subject, group, teacher, room, day, time) tuple.
// BatchID is present iff the referenced subject is practical; otherwise the
// division alone identifies the student group.
type Entry struct {
	ID              string    `db:"id" json:"id"`
	AcademicYearID  string    `db:"academic_year_id" json:"academic_year_id"`
	FacultyID       string    `db:"faculty_id" json:"faculty_id"`
	DepartmentID    string    `db:"department_id" json:"department_id"`
	ProgramID       string    `db:"program_id" json:"program_id"`
	AcademicClassID string    `db:"academic_class_id" json:"academic_class_id"`
	DivisionID      string    `db:"division_id" json:"division_id"`
	BatchID         *string   `db:"batch_id" json:"batch_id,omitempty"`
	SubjectID       string    `db:"subject_id" json:"subject_id"`
	DayID           string    `db:"day_id" json:"day_id"`
	TimeSlotID      string    `db:"time_slot_id" json:"time_slot_id"`
	StaffID         string    `db:"staff_id" json:"staff_id"`
	LocationID      string    `db:"location_id" json:"location_id"`
	CreatedBy       string    `db:"created_by" json:"created_by"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// EntryFilter describes query params for listing entries.
type EntryFilter struct {
	AcademicYearID string
	FacultyID      string
	DepartmentID   string
	ProgramID      string
	DivisionID     string
	StaffID        string
	DayID          string
	TimeSlotID     string
	OwnerID        string
	Page           int
	PageSize       int
}

// ConflictAxis names one of the three independent scheduling dimensions.
type ConflictAxis string

const (
	AxisDivisionOrBatch ConflictAxis = "DIVISION_OR_BATCH"
	AxisStaff           ConflictAxis = "STAFF"
	AxisLocation        ConflictAxis = "LOCATION"
)

// ConflictReport carries the outcome of all three conflict checks. The axes
// are evaluated independently; a candidate may violate any combination.
type ConflictReport struct {
	DivisionConflict bool `json:"division_conflict"`
	StaffConflict    bool `json:"staff_conflict"`
	LocationConflict bool `json:"location_conflict"`
}

// HasConflict reports whether any axis collided.
func (r ConflictReport) HasConflict() bool {
	return r.DivisionConflict || r.StaffConflict || r.LocationConflict
}

// Axes lists the violated axes in a stable order.
func (r ConflictReport) Axes() []ConflictAxis {
	var axes []ConflictAxis
	if r.DivisionConflict {
		axes = append(axes, AxisDivisionOrBatch)
	}
	if r.StaffConflict {
		axes = append(axes, AxisStaff)
	}
	if r.LocationConflict {
		axes = append(axes, AxisLocation)
	}
	return axes
}

// EntryConflictError is returned when a candidate entry collides with the
// existing timetable on one or more axes.
type EntryConflictError struct {
	Message string         `json:"message"`
	Report  ConflictReport `json:"report"`
	Axes    []ConflictAxis `json:"axes"`
}

// Error implements the error interface for conflict errors.
func (e *EntryConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}
