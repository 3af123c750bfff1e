package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
	"github.com/aakib-hotelwala/ttm-api/internal/repository"
	appErrors "github.com/aakib-hotelwala/ttm-api/pkg/errors"
)

type slotCatalog interface {
	Days(ctx context.Context) ([]models.Day, error)
	TimeSlotsByProgram(ctx context.Context, programID string) ([]models.TimeSlot, error)
	StaffByDepartment(ctx context.Context, departmentID string) ([]models.Staff, error)
	LocationsByDepartment(ctx context.Context, departmentID string) ([]models.Location, error)
}

type entryLister interface {
	List(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int, error)
}

// CatalogService exposes the fixed slot universe (days, time slots), the
// per-department staff and location rosters, and scoped reads over the
// scheduled entry set. Option reads degrade to empty sets on upstream
// failure; entry listing surfaces a typed error instead, it is the engine's
// own data rather than a choice set.
type CatalogService struct {
	catalog slotCatalog
	entries entryLister
	cache   optionCache
	metrics *MetricsService
	logger  *zap.Logger
}

// NewCatalogService instantiates CatalogService.
func NewCatalogService(catalog slotCatalog, entries entryLister, cache optionCache, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{catalog: catalog, entries: entries, cache: cache, metrics: metrics, logger: logger}
}

// Days returns the full fixed teaching-day set.
func (s *CatalogService) Days(ctx context.Context) []models.Day {
	key := repository.OptionKey("days", "")
	var cached []models.Day
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	days, err := s.catalog.Days(ctx)
	if err != nil {
		s.logger.Warn("day lookup degraded to empty set", zap.Error(err))
		return []models.Day{}
	}
	s.cacheSet(ctx, key, days)
	return days
}

// TimeSlots returns a program's slots ordered by start time.
func (s *CatalogService) TimeSlots(ctx context.Context, programID string) []models.TimeSlot {
	if programID == "" {
		return []models.TimeSlot{}
	}

	key := repository.OptionKey("time_slots", programID)
	var cached []models.TimeSlot
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	slots, err := s.catalog.TimeSlotsByProgram(ctx, programID)
	if err != nil {
		s.logger.Warn("time slot lookup degraded to empty set",
			zap.String("program_id", programID),
			zap.Error(err))
		return []models.TimeSlot{}
	}
	if slots == nil {
		slots = []models.TimeSlot{}
	}
	s.cacheSet(ctx, key, slots)
	return slots
}

// Staff returns a department's teachers.
func (s *CatalogService) Staff(ctx context.Context, departmentID string) []models.Staff {
	if departmentID == "" {
		return []models.Staff{}
	}

	key := repository.OptionKey("staff", departmentID)
	var cached []models.Staff
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	staff, err := s.catalog.StaffByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Warn("staff lookup degraded to empty set",
			zap.String("department_id", departmentID),
			zap.Error(err))
		return []models.Staff{}
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	s.cacheSet(ctx, key, staff)
	return staff
}

// Locations returns a department's rooms.
func (s *CatalogService) Locations(ctx context.Context, departmentID string) []models.Location {
	if departmentID == "" {
		return []models.Location{}
	}

	key := repository.OptionKey("locations", departmentID)
	var cached []models.Location
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	locations, err := s.catalog.LocationsByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Warn("location lookup degraded to empty set",
			zap.String("department_id", departmentID),
			zap.Error(err))
		return []models.Location{}
	}
	if locations == nil {
		locations = []models.Location{}
	}
	s.cacheSet(ctx, key, locations)
	return locations
}

// Entries returns scheduled entries narrowed by scope with pagination
// metadata.
func (s *CatalogService) Entries(ctx context.Context, filter models.EntryFilter) ([]models.Entry, *models.Pagination, error) {
	entries, total, err := s.entries.List(ctx, filter)
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

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit := s.cache.Get(ctx, key, dest)
	s.metrics.RecordCacheLookup(hit)
	return hit
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, value)
}
