package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
	"github.com/aakib-hotelwala/ttm-api/internal/repository"
	"github.com/aakib-hotelwala/ttm-api/internal/timetable"
	appErrors "github.com/aakib-hotelwala/ttm-api/pkg/errors"
)

type entryRepository interface {
	List(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int, error)
	FindByID(ctx context.Context, id string) (*models.Entry, error)
	ListBySlot(ctx context.Context, academicYearID, dayID, timeSlotID string) ([]models.Entry, error)
	Create(ctx context.Context, entry *models.Entry) error
	Update(ctx context.Context, entry *models.Entry) error
	Delete(ctx context.Context, id string) error
}

type subjectFinder interface {
	FindSubject(ctx context.Context, id string) (*models.Subject, error)
}

// EntryPayload is the candidate entry as assembled by a client. All fields
// but the batch are mandatory on submission; the batch is mandatory iff the
// subject is practical.
type EntryPayload struct {
	AcademicYearID  string  `json:"academic_year_id" validate:"required"`
	FacultyID       string  `json:"faculty_id" validate:"required"`
	DepartmentID    string  `json:"department_id" validate:"required"`
	ProgramID       string  `json:"program_id" validate:"required"`
	AcademicClassID string  `json:"academic_class_id" validate:"required"`
	DivisionID      string  `json:"division_id" validate:"required"`
	BatchID         *string `json:"batch_id,omitempty"`
	SubjectID       string  `json:"subject_id" validate:"required"`
	DayID           string  `json:"day_id" validate:"required"`
	TimeSlotID      string  `json:"time_slot_id" validate:"required"`
	StaffID         string  `json:"staff_id" validate:"required"`
	LocationID      string  `json:"location_id" validate:"required"`
}

// requiredEntryFields pins the order fields are reported missing in, using
// the caller-facing camelCase names.
var requiredEntryFields = []struct {
	name  string
	value func(EntryPayload) string
}{
	{"academicYearId", func(p EntryPayload) string { return p.AcademicYearID }},
	{"facultyId", func(p EntryPayload) string { return p.FacultyID }},
	{"departmentId", func(p EntryPayload) string { return p.DepartmentID }},
	{"programId", func(p EntryPayload) string { return p.ProgramID }},
	{"academicClassId", func(p EntryPayload) string { return p.AcademicClassID }},
	{"divisionId", func(p EntryPayload) string { return p.DivisionID }},
	{"subjectId", func(p EntryPayload) string { return p.SubjectID }},
	{"dayId", func(p EntryPayload) string { return p.DayID }},
	{"timeSlotId", func(p EntryPayload) string { return p.TimeSlotID }},
	{"staffId", func(p EntryPayload) string { return p.StaffID }},
	{"locationId", func(p EntryPayload) string { return p.LocationID }},
}

func (p EntryPayload) toEntry() models.Entry {
	return models.Entry{
		AcademicYearID:  p.AcademicYearID,
		FacultyID:       p.FacultyID,
		DepartmentID:    p.DepartmentID,
		ProgramID:       p.ProgramID,
		AcademicClassID: p.AcademicClassID,
		DivisionID:      p.DivisionID,
		BatchID:         p.BatchID,
		SubjectID:       p.SubjectID,
		DayID:           p.DayID,
		TimeSlotID:      p.TimeSlotID,
		StaffID:         p.StaffID,
		LocationID:      p.LocationID,
	}
}

// EntryService orchestrates the entry lifecycle. Every create and update
// is gated on the conflict detector; deletes are unconditional. The
// database's composite unique indexes stay the authoritative guard against
// concurrent writers, this service is the fast pre-check with better
// error messages.
type EntryService struct {
	repo      entryRepository
	catalog   subjectFinder
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewEntryService instantiates EntryService.
func NewEntryService(repo entryRepository, catalog subjectFinder, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *EntryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntryService{repo: repo, catalog: catalog, validator: validate, metrics: metrics, logger: logger}
}

// List returns entries narrowed by scope with pagination metadata.
func (s *EntryService) List(ctx context.Context, filter models.EntryFilter) ([]models.Entry, *models.Pagination, error) {
	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list entries")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 50
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}
	return entries, pagination, nil
}

// Get loads one entry by id.
func (s *EntryService) Get(ctx context.Context, id string) (*models.Entry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load entry")
	}
	return entry, nil
}

// Create validates and persists a new entry. A conflict on any axis
// rejects the write and reports every violated axis at once.
func (s *EntryService) Create(ctx context.Context, payload EntryPayload, createdBy string) (*models.Entry, error) {
	entry, subjectType, err := s.validate(ctx, payload)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNoConflict(ctx, *entry, subjectType, ""); err != nil {
		return nil, err
	}

	entry.CreatedBy = createdBy
	if err := s.repo.Create(ctx, entry); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "slot was taken by a concurrent write")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create entry")
	}
	return entry, nil
}

// Update re-validates and persists changes to an existing entry, excluding
// the entry's own prior placement from the conflict search.
func (s *EntryService) Update(ctx context.Context, id string, payload EntryPayload) (*models.Entry, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load entry")
	}

	entry, subjectType, err := s.validate(ctx, payload)
	if err != nil {
		return nil, err
	}
	entry.ID = existing.ID
	entry.CreatedBy = existing.CreatedBy
	entry.CreatedAt = existing.CreatedAt

	if err := s.ensureNoConflict(ctx, *entry, subjectType, existing.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "slot was taken by a concurrent write")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update entry")
	}
	return entry, nil
}

// Delete removes an entry unconditionally; no conflict check applies.
func (s *EntryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "entry not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load entry")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete entry")
	}
	return nil
}

// validate checks mandatory fields, resolves the subject to decide whether
// a batch applies, and returns the entry ready for conflict checking.
func (s *EntryService) validate(ctx context.Context, payload EntryPayload) (*models.Entry, models.SubjectType, error) {
	for _, field := range requiredEntryFields {
		if strings.TrimSpace(field.value(payload)) == "" {
			return nil, "", appErrors.MissingField(field.name)
		}
	}
	if err := s.validator.Struct(payload); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid entry payload")
	}

	subject, err := s.catalog.FindSubject(ctx, payload.SubjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", appErrors.Clone(appErrors.ErrValidation, "unknown subject")
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "failed to resolve subject")
	}

	entry := payload.toEntry()
	if subject.RequiresBatch() {
		if entry.BatchID == nil || strings.TrimSpace(*entry.BatchID) == "" {
			return nil, "", appErrors.MissingField("batchId")
		}
	} else {
		// Theory entries identify their group by division alone.
		entry.BatchID = nil
	}

	return &entry, subject.Type, nil
}

func (s *EntryService) ensureNoConflict(ctx context.Context, entry models.Entry, subjectType models.SubjectType, excludeID string) error {
	existing, err := s.repo.ListBySlot(ctx, entry.AcademicYearID, entry.DayID, entry.TimeSlotID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check slot occupancy")
	}

	report := timetable.CheckConflict(entry, subjectType, existing, excludeID)
	s.metrics.ObserveConflictCheck(report)
	if !report.HasConflict() {
		return nil
	}

	axes := report.Axes()
	names := make([]string, 0, len(axes))
	for _, axis := range axes {
		names = append(names, string(axis))
	}
	domainErr := &models.EntryConflictError{
		Message: fmt.Sprintf("scheduling conflict on %s", strings.Join(names, ", ")),
		Report:  report,
		Axes:    axes,
	}
	return appErrors.Wrap(domainErr, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, domainErr.Message)
}
