package timetable

// Field names one selectable field of a candidate entry. The cascade table
// below replaces the per-form clearing conditionals with a single static
// edge set: when a field changes, every transitive dependent must be
// cleared by the caller. Clearing cascades strictly downward, never upward
// or sideways; the what/where tree and the who-teaches tree are disjoint.
type Field string

const (
	FieldFaculty         Field = "facultyId"
	FieldAcademicYear    Field = "academicYearId"
	FieldDepartment      Field = "departmentId"
	FieldProgram         Field = "programId"
	FieldAcademicClass   Field = "academicClassId"
	FieldDivision        Field = "divisionId"
	FieldSubject         Field = "subjectId"
	FieldBatch           Field = "batchId"
	FieldDay             Field = "dayId"
	FieldTimeSlot        Field = "timeSlotId"
	FieldLocation        Field = "locationId"
	FieldStaffFaculty    Field = "staffFacultyId"
	FieldStaffDepartment Field = "staffDepartmentId"
	FieldStaff           Field = "staffId"
)

// edges lists the direct dependents of each field. Subject participates in
// the batch edge because the subject's type decides whether a batch applies
// at all; a subject change therefore invalidates the batch choice.
var edges = map[Field][]Field{
	FieldFaculty:         {FieldAcademicYear, FieldDepartment},
	FieldDepartment:      {FieldProgram, FieldLocation},
	FieldProgram:         {FieldAcademicClass, FieldTimeSlot},
	FieldAcademicClass:   {FieldDivision, FieldSubject},
	FieldDivision:        {FieldBatch},
	FieldSubject:         {FieldBatch},
	FieldStaffFaculty:    {FieldStaffDepartment},
	FieldStaffDepartment: {FieldStaff},
}

// Dependents returns every field that must be cleared when f changes,
// walking the edge table transitively. The order is deterministic:
// breadth-first from f, duplicates removed.
func Dependents(f Field) []Field {
	var result []Field
	seen := map[Field]bool{f: true}

	queue := append([]Field(nil), edges[f]...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		result = append(result, next)
		queue = append(queue, edges[next]...)
	}
	return result
}
