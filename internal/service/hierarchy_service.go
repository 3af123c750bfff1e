package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
	"github.com/aakib-hotelwala/ttm-api/internal/repository"
	"github.com/aakib-hotelwala/ttm-api/internal/timetable"
)

type hierarchyCatalog interface {
	NodesByLevel(ctx context.Context, level models.HierarchyLevel) ([]models.OrgNode, error)
	NodesByParent(ctx context.Context, level models.HierarchyLevel, parentID string) ([]models.OrgNode, error)
	SubjectsByClass(ctx context.Context, academicClassID string) ([]models.Subject, error)
	CurrentAcademicYears(ctx context.Context, facultyID string) ([]models.AcademicYear, error)
}

type optionCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}

// HierarchyService answers point queries over the organizational hierarchy.
// It is stateless: it does not track a current selection, it only resolves
// valid child option sets. Callers clear selections below a changed level
// using the cascade table exposed via DependentFields.
//
// Upstream failures degrade to an empty option list. Partial catalog
// outages must never crash the caller's form, only leave a field empty.
type HierarchyService struct {
	catalog hierarchyCatalog
	cache   optionCache
	metrics *MetricsService
	logger  *zap.Logger
}

// NewHierarchyService instantiates HierarchyService.
func NewHierarchyService(catalog hierarchyCatalog, cache optionCache, metrics *MetricsService, logger *zap.Logger) *HierarchyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HierarchyService{catalog: catalog, cache: cache, metrics: metrics, logger: logger}
}

// Faculties returns the hierarchy roots.
func (s *HierarchyService) Faculties(ctx context.Context) []models.OrgNode {
	key := repository.OptionKey("faculties", "")
	var cached []models.OrgNode
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	nodes, err := s.catalog.NodesByLevel(ctx, models.LevelFaculty)
	if err != nil {
		s.logger.Warn("faculty lookup degraded to empty set", zap.Error(err))
		return []models.OrgNode{}
	}
	s.cacheSet(ctx, key, nodes)
	return nodes
}

// ChildOptions returns the valid children at level under parentID. An
// empty or unknown parent yields an empty list, never an error.
func (s *HierarchyService) ChildOptions(ctx context.Context, level models.HierarchyLevel, parentID string) []models.OrgNode {
	if parentID == "" || !level.Valid() || level == models.LevelFaculty {
		return []models.OrgNode{}
	}

	key := repository.OptionKey(string(level), parentID)
	var cached []models.OrgNode
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	nodes, err := s.catalog.NodesByParent(ctx, level, parentID)
	if err != nil {
		s.logger.Warn("child option lookup degraded to empty set",
			zap.String("level", string(level)),
			zap.String("parent_id", parentID),
			zap.Error(err))
		return []models.OrgNode{}
	}
	if nodes == nil {
		nodes = []models.OrgNode{}
	}
	s.cacheSet(ctx, key, nodes)
	return nodes
}

// SubjectsFor returns the subjects taught to an academic class.
func (s *HierarchyService) SubjectsFor(ctx context.Context, academicClassID string) []models.Subject {
	if academicClassID == "" {
		return []models.Subject{}
	}

	key := repository.OptionKey("subjects", academicClassID)
	var cached []models.Subject
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	subjects, err := s.catalog.SubjectsByClass(ctx, academicClassID)
	if err != nil {
		s.logger.Warn("subject lookup degraded to empty set",
			zap.String("academic_class_id", academicClassID),
			zap.Error(err))
		return []models.Subject{}
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	s.cacheSet(ctx, key, subjects)
	return subjects
}

// AcademicYearsFor returns the current academic years of a faculty.
func (s *HierarchyService) AcademicYearsFor(ctx context.Context, facultyID string) []models.AcademicYear {
	if facultyID == "" {
		return []models.AcademicYear{}
	}

	key := repository.OptionKey("academic_years", facultyID)
	var cached []models.AcademicYear
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	years, err := s.catalog.CurrentAcademicYears(ctx, facultyID)
	if err != nil {
		s.logger.Warn("academic year lookup degraded to empty set",
			zap.String("faculty_id", facultyID),
			zap.Error(err))
		return []models.AcademicYear{}
	}
	if years == nil {
		years = []models.AcademicYear{}
	}
	s.cacheSet(ctx, key, years)
	return years
}

// DependentFields lists every candidate field invalidated by a change to
// field, walking the static cascade table transitively.
func (s *HierarchyService) DependentFields(field timetable.Field) []timetable.Field {
	return timetable.Dependents(field)
}

func (s *HierarchyService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit := s.cache.Get(ctx, key, dest)
	s.metrics.RecordCacheLookup(hit)
	return hit
}

func (s *HierarchyService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, value)
}
