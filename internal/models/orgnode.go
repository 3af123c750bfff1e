package models

// HierarchyLevel names one stratum of the organizational tree. The levels
// form a strict parent chain: faculty > department > program >
// academic_class > division > batch.
type HierarchyLevel string

const (
	LevelFaculty       HierarchyLevel = "faculty"
	LevelDepartment    HierarchyLevel = "department"
	LevelProgram       HierarchyLevel = "program"
	LevelAcademicClass HierarchyLevel = "academic_class"
	LevelDivision      HierarchyLevel = "division"
	LevelBatch         HierarchyLevel = "batch"
)

// ParentLevel returns the level directly above, or empty for the root.
func (l HierarchyLevel) ParentLevel() HierarchyLevel {
	switch l {
	case LevelDepartment:
		return LevelFaculty
	case LevelProgram:
		return LevelDepartment
	case LevelAcademicClass:
		return LevelProgram
	case LevelDivision:
		return LevelAcademicClass
	case LevelBatch:
		return LevelDivision
	default:
		return ""
	}
}

// Valid reports whether l names a known hierarchy level.
func (l HierarchyLevel) Valid() bool {
	switch l {
	case LevelFaculty, LevelDepartment, LevelProgram, LevelAcademicClass, LevelDivision, LevelBatch:
		return true
	}
	return false
}

// OrgNode is one node of the organizational hierarchy. ParentID is nil for
// faculties, the hierarchy roots.
type OrgNode struct {
	ID       string         `db:"id" json:"id"`
	Name     string         `db:"name" json:"name"`
	Level    HierarchyLevel `db:"level" json:"level"`
	ParentID *string        `db:"parent_id" json:"parent_id,omitempty"`
}

// AcademicYear scopes a timetable. Only years flagged current are offered
// when assembling new entries.
type AcademicYear struct {
	ID        string `db:"id" json:"id"`
	Code      string `db:"code" json:"code"`
	FacultyID string `db:"faculty_id" json:"faculty_id"`
	Current   bool   `db:"current" json:"current"`
}
