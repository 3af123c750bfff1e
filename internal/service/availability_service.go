package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
	"github.com/aakib-hotelwala/ttm-api/internal/timetable"
	appErrors "github.com/aakib-hotelwala/ttm-api/pkg/errors"
)

type availabilityEntrySource interface {
	ListBySlot(ctx context.Context, academicYearID, dayID, timeSlotID string) ([]models.Entry, error)
	ListByDay(ctx context.Context, academicYearID, dayID string) ([]models.Entry, error)
	ListByYear(ctx context.Context, academicYearID string) ([]models.Entry, error)
}

type availabilityCatalog interface {
	slotCatalog
	subjectFinder
}

// AvailabilityRequest carries a partial candidate plus the ids needed to
// resolve the full option universe. ExcludeEntryID names the entry being
// edited so it never blocks its own slot.
type AvailabilityRequest struct {
	EntryPayload
	StaffDepartmentID string `json:"staff_department_id,omitempty"`
	ExcludeEntryID    string `json:"exclude_entry_id,omitempty"`
}

// AvailabilityService derives, for a partially-filled candidate, the
// options that would not conflict if chosen. Missing upstream fields mean
// no narrowing: the full option set comes back unfiltered, because partial
// information must never hide valid choices.
type AvailabilityService struct {
	entries availabilityEntrySource
	catalog availabilityCatalog
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAvailabilityService instantiates AvailabilityService.
func NewAvailabilityService(entries availabilityEntrySource, catalog availabilityCatalog, metrics *MetricsService, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{entries: entries, catalog: catalog, metrics: metrics, logger: logger}
}

// TimeSlots returns the program's slots the candidate could occupy on its
// chosen day.
func (s *AvailabilityService) TimeSlots(ctx context.Context, req AvailabilityRequest) ([]models.TimeSlot, error) {
	if req.ProgramID == "" {
		return nil, appErrors.MissingField("programId")
	}
	slots, err := s.catalog.TimeSlotsByProgram(ctx, req.ProgramID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "failed to load time slots")
	}

	existing, err := s.existingForDay(ctx, req)
	if err != nil {
		return nil, err
	}

	subjectType := s.subjectType(ctx, req)
	return timetable.AvailableTimeSlots(req.EntryPayload.toEntry(), subjectType, slots, existing, req.ExcludeEntryID), nil
}

// Days returns the days the candidate could occupy in its chosen slot.
func (s *AvailabilityService) Days(ctx context.Context, req AvailabilityRequest) ([]models.Day, error) {
	days, err := s.catalog.Days(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "failed to load days")
	}

	var existing []models.Entry
	if req.AcademicYearID != "" && req.TimeSlotID != "" {
		existing, err = s.entries.ListByYear(ctx, req.AcademicYearID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scheduled entries")
		}
	}

	subjectType := s.subjectType(ctx, req)
	return timetable.AvailableDays(req.EntryPayload.toEntry(), subjectType, days, existing, req.ExcludeEntryID), nil
}

// Staff returns the department's teachers free in the candidate's slot.
func (s *AvailabilityService) Staff(ctx context.Context, req AvailabilityRequest) ([]models.Staff, error) {
	departmentID := req.StaffDepartmentID
	if departmentID == "" {
		departmentID = req.DepartmentID
	}
	if departmentID == "" {
		return nil, appErrors.MissingField("staffDepartmentId")
	}
	staff, err := s.catalog.StaffByDepartment(ctx, departmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "failed to load staff")
	}

	existing, err := s.existingForSlot(ctx, req)
	if err != nil {
		return nil, err
	}

	subjectType := s.subjectType(ctx, req)
	return timetable.AvailableStaff(req.EntryPayload.toEntry(), subjectType, staff, existing, req.ExcludeEntryID), nil
}

// Locations returns the department's rooms free in the candidate's slot.
func (s *AvailabilityService) Locations(ctx context.Context, req AvailabilityRequest) ([]models.Location, error) {
	if req.DepartmentID == "" {
		return nil, appErrors.MissingField("departmentId")
	}
	locations, err := s.catalog.LocationsByDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "failed to load locations")
	}

	existing, err := s.existingForSlot(ctx, req)
	if err != nil {
		return nil, err
	}

	subjectType := s.subjectType(ctx, req)
	return timetable.AvailableLocations(req.EntryPayload.toEntry(), subjectType, locations, existing, req.ExcludeEntryID), nil
}

// existingForDay loads the entry working set for time-slot filtering. No
// day or year selected means no narrowing happens downstream, so an empty
// set suffices.
func (s *AvailabilityService) existingForDay(ctx context.Context, req AvailabilityRequest) ([]models.Entry, error) {
	if req.AcademicYearID == "" || req.DayID == "" {
		return nil, nil
	}
	existing, err := s.entries.ListByDay(ctx, req.AcademicYearID, req.DayID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scheduled entries")
	}
	return existing, nil
}

func (s *AvailabilityService) existingForSlot(ctx context.Context, req AvailabilityRequest) ([]models.Entry, error) {
	if req.AcademicYearID == "" || req.DayID == "" || req.TimeSlotID == "" {
		return nil, nil
	}
	existing, err := s.entries.ListBySlot(ctx, req.AcademicYearID, req.DayID, req.TimeSlotID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scheduled entries")
	}
	return existing, nil
}

// subjectType resolves group granularity for the candidate. A failed
// lookup degrades by inferring practical semantics from batch presence.
func (s *AvailabilityService) subjectType(ctx context.Context, req AvailabilityRequest) models.SubjectType {
	if req.SubjectID != "" {
		if subject, err := s.catalog.FindSubject(ctx, req.SubjectID); err == nil {
			return subject.Type
		}
		s.logger.Warn("subject type lookup failed, falling back on batch presence",
			zap.String("subject_id", req.SubjectID))
	}
	if req.BatchID != nil && *req.BatchID != "" {
		return models.SubjectPractical
	}
	return models.SubjectTheory
}
