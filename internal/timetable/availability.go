package timetable

import "github.com/aakib-hotelwala/ttm-api/internal/models"

// The availability filters share one shape: substitute each option into the
// relevant field of the partial candidate, run CheckConflict, and keep the
// option iff no axis collides. The currently selected option is always kept
// so editing a field never hides its current value. When required upstream
// fields are missing the full option set is returned unfiltered: partial
// information must never hide valid choices, it only fails to narrow them.

// AvailableTimeSlots narrows slots to those the candidate could occupy on
// its chosen day. Requires the day and the student group to be selected.
func AvailableTimeSlots(candidate models.Entry, subjectType models.SubjectType, slots []models.TimeSlot, existing []models.Entry, excludeID string) []models.TimeSlot {
	if candidate.DayID == "" || !groupSelected(candidate, subjectType) {
		return slots
	}

	result := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.ID == candidate.TimeSlotID {
			result = append(result, slot)
			continue
		}
		trial := candidate
		trial.TimeSlotID = slot.ID
		if !CheckConflict(trial, subjectType, existing, excludeID).HasConflict() {
			result = append(result, slot)
		}
	}
	return result
}

// AvailableDays narrows days analogously. Requires the time slot and the
// student group to be selected.
func AvailableDays(candidate models.Entry, subjectType models.SubjectType, days []models.Day, existing []models.Entry, excludeID string) []models.Day {
	if candidate.TimeSlotID == "" || !groupSelected(candidate, subjectType) {
		return days
	}

	result := make([]models.Day, 0, len(days))
	for _, day := range days {
		if day.ID == candidate.DayID {
			result = append(result, day)
			continue
		}
		trial := candidate
		trial.DayID = day.ID
		if !CheckConflict(trial, subjectType, existing, excludeID).HasConflict() {
			result = append(result, day)
		}
	}
	return result
}

// AvailableStaff narrows teachers to those free in the candidate's slot.
// Requires day and time slot to be selected.
func AvailableStaff(candidate models.Entry, subjectType models.SubjectType, staff []models.Staff, existing []models.Entry, excludeID string) []models.Staff {
	if candidate.DayID == "" || candidate.TimeSlotID == "" {
		return staff
	}

	result := make([]models.Staff, 0, len(staff))
	for _, member := range staff {
		if member.ID == candidate.StaffID {
			result = append(result, member)
			continue
		}
		trial := candidate
		trial.StaffID = member.ID
		if !CheckConflict(trial, subjectType, existing, excludeID).HasConflict() {
			result = append(result, member)
		}
	}
	return result
}

// AvailableLocations narrows rooms to those free in the candidate's slot.
// Requires day and time slot to be selected.
func AvailableLocations(candidate models.Entry, subjectType models.SubjectType, locations []models.Location, existing []models.Entry, excludeID string) []models.Location {
	if candidate.DayID == "" || candidate.TimeSlotID == "" {
		return locations
	}

	result := make([]models.Location, 0, len(locations))
	for _, location := range locations {
		if location.ID == candidate.LocationID {
			result = append(result, location)
			continue
		}
		trial := candidate
		trial.LocationID = location.ID
		if !CheckConflict(trial, subjectType, existing, excludeID).HasConflict() {
			result = append(result, location)
		}
	}
	return result
}

func groupSelected(candidate models.Entry, subjectType models.SubjectType) bool {
	if subjectType == models.SubjectPractical {
		return candidate.BatchID != nil && *candidate.BatchID != ""
	}
	return candidate.DivisionID != ""
}
