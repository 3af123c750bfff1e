package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
)

func strPtr(s string) *string { return &s }

func theoryEntry(id, division, staff, location, day, slot string) models.Entry {
	return models.Entry{
		ID:         id,
		DivisionID: division,
		StaffID:    staff,
		LocationID: location,
		DayID:      day,
		TimeSlotID: slot,
	}
}

func TestCheckConflictEmptyTimetable(t *testing.T) {
	candidate := theoryEntry("", "div-1", "staff-1", "room-1", "mon", "slot-1")

	report := CheckConflict(candidate, models.SubjectTheory, nil, "")
	assert.False(t, report.HasConflict())

	report = CheckConflict(candidate, models.SubjectTheory, []models.Entry{}, "")
	assert.False(t, report.HasConflict())
}

func TestCheckConflictStaffDoubleBooked(t *testing.T) {
	existing := []models.Entry{
		theoryEntry("e1", "div-1", "staff-7", "room-1", "mon", "slot-2"),
	}
	candidate := theoryEntry("", "div-2", "staff-7", "room-9", "mon", "slot-2")

	report := CheckConflict(candidate, models.SubjectTheory, existing, "")
	assert.True(t, report.StaffConflict)
	assert.False(t, report.DivisionConflict)
	assert.False(t, report.LocationConflict)
	assert.Equal(t, []models.ConflictAxis{models.AxisStaff}, report.Axes())
}

func TestCheckConflictDifferentSlotNeverCollides(t *testing.T) {
	existing := []models.Entry{
		theoryEntry("e1", "div-1", "staff-7", "room-1", "mon", "slot-2"),
	}

	// Same everything but the time slot.
	candidate := theoryEntry("", "div-1", "staff-7", "room-1", "mon", "slot-3")
	assert.False(t, CheckConflict(candidate, models.SubjectTheory, existing, "").HasConflict())

	// Same everything but the day.
	candidate = theoryEntry("", "div-1", "staff-7", "room-1", "tue", "slot-2")
	assert.False(t, CheckConflict(candidate, models.SubjectTheory, existing, "").HasConflict())
}

func TestCheckConflictAllAxesAtOnce(t *testing.T) {
	existing := []models.Entry{
		theoryEntry("e1", "div-1", "staff-1", "room-1", "mon", "slot-1"),
	}
	candidate := theoryEntry("", "div-1", "staff-1", "room-1", "mon", "slot-1")

	report := CheckConflict(candidate, models.SubjectTheory, existing, "")
	assert.True(t, report.DivisionConflict)
	assert.True(t, report.StaffConflict)
	assert.True(t, report.LocationConflict)
	assert.Equal(t, []models.ConflictAxis{models.AxisDivisionOrBatch, models.AxisStaff, models.AxisLocation}, report.Axes())
}

func TestCheckConflictExcludesOwnEntry(t *testing.T) {
	existing := []models.Entry{
		theoryEntry("e1", "div-1", "staff-1", "room-1", "mon", "slot-1"),
		theoryEntry("e2", "div-2", "staff-2", "room-2", "mon", "slot-1"),
	}
	candidate := theoryEntry("", "div-1", "staff-1", "room-1", "mon", "slot-1")

	report := CheckConflict(candidate, models.SubjectTheory, existing, "e1")
	assert.False(t, report.HasConflict())

	// Exclusion is scoped to the one id; e2's room still blocks.
	candidate.LocationID = "room-2"
	report = CheckConflict(candidate, models.SubjectTheory, existing, "e1")
	assert.True(t, report.LocationConflict)
	assert.False(t, report.StaffConflict)
}

func TestCheckConflictPracticalBatchGranularity(t *testing.T) {
	existing := []models.Entry{
		{
			ID: "e1", DivisionID: "div-5", BatchID: strPtr("batch-5a"),
			StaffID: "staff-1", LocationID: "lab-1", DayID: "mon", TimeSlotID: "slot-1",
		},
	}

	// Same division, different batch: parallel practicals are fine.
	candidate := models.Entry{
		DivisionID: "div-5", BatchID: strPtr("batch-5b"),
		StaffID: "staff-2", LocationID: "lab-2", DayID: "mon", TimeSlotID: "slot-1",
	}
	report := CheckConflict(candidate, models.SubjectPractical, existing, "")
	assert.False(t, report.DivisionConflict)

	// Same batch double-booked.
	candidate.BatchID = strPtr("batch-5a")
	report = CheckConflict(candidate, models.SubjectPractical, existing, "")
	assert.True(t, report.DivisionConflict)
}

func TestCheckConflictPracticalAgainstBatchlessEntry(t *testing.T) {
	existing := []models.Entry{
		theoryEntry("e1", "div-5", "staff-1", "room-1", "mon", "slot-1"),
	}
	candidate := models.Entry{
		DivisionID: "div-5", BatchID: strPtr("batch-5a"),
		StaffID: "staff-2", LocationID: "lab-1", DayID: "mon", TimeSlotID: "slot-1",
	}

	// A practical candidate only matches entries with the same batch set.
	report := CheckConflict(candidate, models.SubjectPractical, existing, "")
	assert.False(t, report.DivisionConflict)
}

func TestCheckConflictTheoryWholeDivision(t *testing.T) {
	existing := []models.Entry{
		{
			ID: "e1", DivisionID: "div-5", BatchID: strPtr("batch-5a"),
			StaffID: "staff-1", LocationID: "lab-1", DayID: "mon", TimeSlotID: "slot-1",
		},
	}
	candidate := theoryEntry("", "div-5", "staff-2", "room-1", "mon", "slot-1")

	// A theory lecture claims the whole division, batch occupancy included.
	report := CheckConflict(candidate, models.SubjectTheory, existing, "")
	assert.True(t, report.DivisionConflict)
}

func TestCheckConflictUnsetAxesNeverFire(t *testing.T) {
	existing := []models.Entry{
		{ID: "e1", DayID: "mon", TimeSlotID: "slot-1"},
	}
	candidate := models.Entry{DayID: "mon", TimeSlotID: "slot-1"}

	report := CheckConflict(candidate, models.SubjectTheory, existing, "")
	assert.False(t, report.HasConflict())
}

func TestCheckConflictIsPureAndIdempotent(t *testing.T) {
	existing := []models.Entry{
		theoryEntry("e1", "div-1", "staff-1", "room-1", "mon", "slot-1"),
		theoryEntry("e2", "div-2", "staff-2", "room-2", "mon", "slot-1"),
	}
	snapshot := make([]models.Entry, len(existing))
	copy(snapshot, existing)

	candidate := theoryEntry("", "div-1", "staff-9", "room-9", "mon", "slot-1")

	first := CheckConflict(candidate, models.SubjectTheory, existing, "")
	second := CheckConflict(candidate, models.SubjectTheory, existing, "")
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, existing)
}
