// Package timetable holds the pure slot-allocation engine: conflict
// detection, availability filtering, and the hierarchy cascade table. It
// operates over already-fetched in-memory data and never touches storage.
package timetable

import "github.com/aakib-hotelwala/ttm-api/internal/models"

// CheckConflict evaluates the candidate against every existing entry that
// occupies the same (day, time slot), skipping excludeID so an entry under
// update never collides with its own prior placement.
//
// The three axes are independent and all three are always evaluated; each
// produces a distinct user-facing message and a caller may need to surface
// several at once. Group identity is the batch when the candidate's subject
// is practical, else the division: two batches of one division may run in
// parallel, the same batch (or whole division) cannot be double-booked.
//
// The existing slice is never mutated. A nil or empty slice means no
// conflicts; detecting a conflict is a valid result, not an error.
func CheckConflict(candidate models.Entry, subjectType models.SubjectType, existing []models.Entry, excludeID string) models.ConflictReport {
	var report models.ConflictReport

	for _, item := range existing {
		if item.ID != "" && item.ID == excludeID {
			continue
		}
		if item.DayID != candidate.DayID || item.TimeSlotID != candidate.TimeSlotID {
			continue
		}
		if sameGroup(candidate, subjectType, item) {
			report.DivisionConflict = true
		}
		if candidate.StaffID != "" && item.StaffID == candidate.StaffID {
			report.StaffConflict = true
		}
		if candidate.LocationID != "" && item.LocationID == candidate.LocationID {
			report.LocationConflict = true
		}
	}

	return report
}

// sameGroup reports whether item occupies the candidate's student group.
// Practical subjects schedule at batch granularity: division equality alone
// never collides unless the batch matches too.
func sameGroup(candidate models.Entry, subjectType models.SubjectType, item models.Entry) bool {
	if subjectType == models.SubjectPractical {
		if candidate.BatchID == nil || item.BatchID == nil {
			return false
		}
		return *candidate.BatchID == *item.BatchID
	}
	if candidate.DivisionID == "" {
		return false
	}
	return item.DivisionID == candidate.DivisionID
}
