package models

// SubjectType distinguishes whole-division theory subjects from practical
// subjects scheduled per batch.
type SubjectType string

const (
	SubjectTheory    SubjectType = "THEORY"
	SubjectPractical SubjectType = "PRACTICAL"
)

// Subject belongs to one academic class. Its type is the sole determinant
// of whether a timetable entry for it carries a batch.
type Subject struct {
	ID              string      `db:"id" json:"id"`
	Name            string      `db:"name" json:"name"`
	Type            SubjectType `db:"subject_type" json:"subject_type"`
	AcademicClassID string      `db:"academic_class_id" json:"academic_class_id"`
}

// RequiresBatch reports whether entries for this subject must name a batch.
func (s Subject) RequiresBatch() bool {
	return s.Type == SubjectPractical
}
