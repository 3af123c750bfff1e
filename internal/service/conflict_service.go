package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
	"github.com/aakib-hotelwala/ttm-api/internal/timetable"
	appErrors "github.com/aakib-hotelwala/ttm-api/pkg/errors"
)

type slotEntrySource interface {
	ListBySlot(ctx context.Context, academicYearID, dayID, timeSlotID string) ([]models.Entry, error)
}

// SlotCheckRequest asks whether a student group is free in a slot. A batch
// id switches the check to batch granularity.
type SlotCheckRequest struct {
	AcademicYearID string  `json:"academic_year_id" validate:"required"`
	DivisionID     string  `json:"division_id" validate:"required"`
	BatchID        *string `json:"batch_id,omitempty"`
	DayID          string  `json:"day_id" validate:"required"`
	TimeSlotID     string  `json:"time_slot_id" validate:"required"`
}

// StaffCheckRequest asks whether a teacher is free in a slot.
type StaffCheckRequest struct {
	AcademicYearID string `json:"academic_year_id" validate:"required"`
	StaffID        string `json:"staff_id" validate:"required"`
	DayID          string `json:"day_id" validate:"required"`
	TimeSlotID     string `json:"time_slot_id" validate:"required"`
}

// LocationCheckRequest asks whether a room is free in a slot.
type LocationCheckRequest struct {
	AcademicYearID string `json:"academic_year_id" validate:"required"`
	LocationID     string `json:"location_id" validate:"required"`
	DayID          string `json:"day_id" validate:"required"`
	TimeSlotID     string `json:"time_slot_id" validate:"required"`
}

// CandidateCheckRequest carries a full candidate for the combined check.
type CandidateCheckRequest struct {
	EntryPayload
	ExcludeEntryID string `json:"exclude_entry_id,omitempty"`
}

// ConflictService runs detector evaluations on behalf of clients that want
// a pre-check before submitting. The detector itself never fails; only the
// slot read can, and that failure is recoverable.
type ConflictService struct {
	entries   slotEntrySource
	catalog   subjectFinder
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewConflictService instantiates ConflictService.
func NewConflictService(entries slotEntrySource, catalog subjectFinder, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ConflictService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConflictService{entries: entries, catalog: catalog, validator: validate, metrics: metrics, logger: logger}
}

// Check evaluates a full candidate on all three axes, excluding the named
// entry when a client is editing an existing one.
func (s *ConflictService) Check(ctx context.Context, req CandidateCheckRequest) (models.ConflictReport, error) {
	if req.DayID == "" {
		return models.ConflictReport{}, appErrors.MissingField("dayId")
	}
	if req.TimeSlotID == "" {
		return models.ConflictReport{}, appErrors.MissingField("timeSlotId")
	}
	if req.AcademicYearID == "" {
		return models.ConflictReport{}, appErrors.MissingField("academicYearId")
	}

	subjectType := s.resolveSubjectType(ctx, req.SubjectID, req.BatchID)

	existing, err := s.entries.ListBySlot(ctx, req.AcademicYearID, req.DayID, req.TimeSlotID)
	if err != nil {
		return models.ConflictReport{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check slot occupancy")
	}

	report := timetable.CheckConflict(req.EntryPayload.toEntry(), subjectType, existing, req.ExcludeEntryID)
	s.metrics.ObserveConflictCheck(report)
	return report, nil
}

// CheckSlot reports whether the student group already occupies the slot.
func (s *ConflictService) CheckSlot(ctx context.Context, req SlotCheckRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid slot check payload")
	}

	existing, err := s.entries.ListBySlot(ctx, req.AcademicYearID, req.DayID, req.TimeSlotID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check slot occupancy")
	}

	candidate := models.Entry{
		DivisionID: req.DivisionID,
		BatchID:    req.BatchID,
		DayID:      req.DayID,
		TimeSlotID: req.TimeSlotID,
	}
	subjectType := models.SubjectTheory
	if req.BatchID != nil && *req.BatchID != "" {
		subjectType = models.SubjectPractical
	}

	report := timetable.CheckConflict(candidate, subjectType, existing, "")
	s.metrics.ObserveConflictCheck(report)
	return report.DivisionConflict, nil
}

// CheckStaff reports whether the teacher is already scheduled in the slot.
func (s *ConflictService) CheckStaff(ctx context.Context, req StaffCheckRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid staff check payload")
	}

	existing, err := s.entries.ListBySlot(ctx, req.AcademicYearID, req.DayID, req.TimeSlotID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check slot occupancy")
	}

	candidate := models.Entry{
		StaffID:    req.StaffID,
		DayID:      req.DayID,
		TimeSlotID: req.TimeSlotID,
	}
	report := timetable.CheckConflict(candidate, models.SubjectTheory, existing, "")
	s.metrics.ObserveConflictCheck(report)
	return report.StaffConflict, nil
}

// CheckLocation reports whether the room is already booked in the slot.
func (s *ConflictService) CheckLocation(ctx context.Context, req LocationCheckRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid location check payload")
	}

	existing, err := s.entries.ListBySlot(ctx, req.AcademicYearID, req.DayID, req.TimeSlotID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check slot occupancy")
	}

	candidate := models.Entry{
		LocationID: req.LocationID,
		DayID:      req.DayID,
		TimeSlotID: req.TimeSlotID,
	}
	report := timetable.CheckConflict(candidate, models.SubjectTheory, existing, "")
	s.metrics.ObserveConflictCheck(report)
	return report.LocationConflict, nil
}

// resolveSubjectType decides group granularity for a partial candidate.
// An unresolvable subject degrades to division granularity unless a batch
// was explicitly chosen.
func (s *ConflictService) resolveSubjectType(ctx context.Context, subjectID string, batchID *string) models.SubjectType {
	if subjectID != "" {
		if subject, err := s.catalog.FindSubject(ctx, subjectID); err == nil {
			return subject.Type
		}
		s.logger.Warn("subject type lookup failed, falling back on batch presence",
			zap.String("subject_id", subjectID))
	}
	if batchID != nil && *batchID != "" {
		return models.SubjectPractical
	}
	return models.SubjectTheory
}
