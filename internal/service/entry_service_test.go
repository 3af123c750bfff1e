package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
	appErrors "github.com/aakib-hotelwala/ttm-api/pkg/errors"
)

type mockEntryRepo struct {
	items      map[string]*models.Entry
	slot       []models.Entry
	slotErr    error
	listResult []models.Entry
	listTotal  int
	listErr    error
	created    []models.Entry
	updated    []models.Entry
	deleted    []string
	createErr  error
	updateErr  error
}

func (m *mockEntryRepo) List(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.listResult, m.listTotal, nil
}

func (m *mockEntryRepo) FindByID(ctx context.Context, id string) (*models.Entry, error) {
	if entry, ok := m.items[id]; ok {
		cp := *entry
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEntryRepo) ListBySlot(ctx context.Context, academicYearID, dayID, timeSlotID string) ([]models.Entry, error) {
	if m.slotErr != nil {
		return nil, m.slotErr
	}
	var out []models.Entry
	for _, e := range m.slot {
		if e.AcademicYearID == academicYearID && e.DayID == dayID && e.TimeSlotID == timeSlotID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEntryRepo) ListByDay(ctx context.Context, academicYearID, dayID string) ([]models.Entry, error) {
	if m.slotErr != nil {
		return nil, m.slotErr
	}
	var out []models.Entry
	for _, e := range m.slot {
		if e.AcademicYearID == academicYearID && e.DayID == dayID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEntryRepo) ListByYear(ctx context.Context, academicYearID string) ([]models.Entry, error) {
	if m.slotErr != nil {
		return nil, m.slotErr
	}
	var out []models.Entry
	for _, e := range m.slot {
		if e.AcademicYearID == academicYearID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEntryRepo) Create(ctx context.Context, entry *models.Entry) error {
	if m.createErr != nil {
		return m.createErr
	}
	if entry.ID == "" {
		entry.ID = "generated"
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	m.created = append(m.created, *entry)
	return nil
}

func (m *mockEntryRepo) Update(ctx context.Context, entry *models.Entry) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, *entry)
	return nil
}

func (m *mockEntryRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockSubjectCatalog struct {
	subjects map[string]*models.Subject
	findErr  error
}

func (m *mockSubjectCatalog) FindSubject(ctx context.Context, id string) (*models.Subject, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if subject, ok := m.subjects[id]; ok {
		cp := *subject
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func theoryCatalog() *mockSubjectCatalog {
	return &mockSubjectCatalog{subjects: map[string]*models.Subject{
		"sub-th": {ID: "sub-th", Name: "Calculus", Type: models.SubjectTheory},
		"sub-pr": {ID: "sub-pr", Name: "Chemistry Lab", Type: models.SubjectPractical},
	}}
}

func validPayload() EntryPayload {
	return EntryPayload{
		AcademicYearID:  "ay-1",
		FacultyID:       "fac-1",
		DepartmentID:    "dep-1",
		ProgramID:       "prog-1",
		AcademicClassID: "class-1",
		DivisionID:      "div-1",
		SubjectID:       "sub-th",
		DayID:           "mon",
		TimeSlotID:      "slot-1",
		StaffID:         "staff-1",
		LocationID:      "room-1",
	}
}

func TestEntryServiceCreate(t *testing.T) {
	repo := &mockEntryRepo{}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	entry, err := service.Create(context.Background(), validPayload(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", entry.CreatedBy)
	assert.Nil(t, entry.BatchID)
	assert.Len(t, repo.created, 1)
}

func TestEntryServiceCreateMissingLocation(t *testing.T) {
	repo := &mockEntryRepo{}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	payload := validPayload()
	payload.LocationID = ""

	_, err := service.Create(context.Background(), payload, "user-1")
	require.Error(t, err)

	var typed *appErrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, appErrors.ErrValidation.Code, typed.Code)
	assert.Equal(t, "missing required field: locationId", typed.Message)
	assert.Empty(t, repo.created)
}

func TestEntryServiceCreateUnknownSubject(t *testing.T) {
	repo := &mockEntryRepo{}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	payload := validPayload()
	payload.SubjectID = "sub-missing"

	_, err := service.Create(context.Background(), payload, "user-1")
	var typed *appErrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, appErrors.ErrValidation.Code, typed.Code)
	assert.Empty(t, repo.created)
}

func TestEntryServiceCreateSubjectLookupDown(t *testing.T) {
	repo := &mockEntryRepo{}
	catalog := &mockSubjectCatalog{findErr: errors.New("connection refused")}
	service := NewEntryService(repo, catalog, validator.New(), nil, zap.NewNop())

	_, err := service.Create(context.Background(), validPayload(), "user-1")
	var typed *appErrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, appErrors.ErrUpstreamUnavailable.Code, typed.Code)
	assert.Empty(t, repo.created)
}

func TestEntryServiceCreatePracticalRequiresBatch(t *testing.T) {
	repo := &mockEntryRepo{}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	payload := validPayload()
	payload.SubjectID = "sub-pr"

	_, err := service.Create(context.Background(), payload, "user-1")
	var typed *appErrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "missing required field: batchId", typed.Message)

	batch := "batch-a"
	payload.BatchID = &batch
	entry, err := service.Create(context.Background(), payload, "user-1")
	require.NoError(t, err)
	require.NotNil(t, entry.BatchID)
	assert.Equal(t, "batch-a", *entry.BatchID)
}

func TestEntryServiceCreateDropsBatchForTheory(t *testing.T) {
	repo := &mockEntryRepo{}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	batch := "batch-a"
	payload := validPayload()
	payload.BatchID = &batch

	entry, err := service.Create(context.Background(), payload, "user-1")
	require.NoError(t, err)
	assert.Nil(t, entry.BatchID)
}

func TestEntryServiceCreateRejectsConflict(t *testing.T) {
	repo := &mockEntryRepo{slot: []models.Entry{
		{ID: "e1", AcademicYearID: "ay-1", DivisionID: "div-9", StaffID: "staff-1", LocationID: "room-9", DayID: "mon", TimeSlotID: "slot-1"},
	}}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	_, err := service.Create(context.Background(), validPayload(), "user-1")
	require.Error(t, err)

	var typed *appErrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, appErrors.ErrConflict.Code, typed.Code)

	var conflict *models.EntryConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []models.ConflictAxis{models.AxisStaff}, conflict.Axes)
	assert.Empty(t, repo.created)
}

func TestEntryServiceCreateConcurrentWriteLoses(t *testing.T) {
	repo := &mockEntryRepo{createErr: &pq.Error{Code: "23505"}}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	_, err := service.Create(context.Background(), validPayload(), "user-1")
	var typed *appErrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, appErrors.ErrConflict.Code, typed.Code)
	assert.Equal(t, "slot was taken by a concurrent write", typed.Message)
}

func TestEntryServiceUpdateExcludesOwnSlot(t *testing.T) {
	existing := models.Entry{
		ID: "e1", AcademicYearID: "ay-1", FacultyID: "fac-1", DepartmentID: "dep-1",
		ProgramID: "prog-1", AcademicClassID: "class-1", DivisionID: "div-1",
		SubjectID: "sub-th", DayID: "mon", TimeSlotID: "slot-1",
		StaffID: "staff-1", LocationID: "room-1",
		CreatedBy: "user-1", CreatedAt: time.Now().Add(-time.Hour),
	}
	repo := &mockEntryRepo{
		items: map[string]*models.Entry{"e1": &existing},
		slot:  []models.Entry{existing},
	}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	// Re-submitting the same placement must not collide with itself.
	updated, err := service.Update(context.Background(), "e1", validPayload())
	require.NoError(t, err)
	assert.Equal(t, "e1", updated.ID)
	assert.Equal(t, "user-1", updated.CreatedBy)
	assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
	assert.Len(t, repo.updated, 1)
}

func TestEntryServiceUpdateNotFound(t *testing.T) {
	repo := &mockEntryRepo{}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	_, err := service.Update(context.Background(), "nope", validPayload())
	var typed *appErrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, appErrors.ErrNotFound.Code, typed.Code)
}

func TestEntryServiceGet(t *testing.T) {
	repo := &mockEntryRepo{items: map[string]*models.Entry{
		"e1": {ID: "e1", DivisionID: "div-1"},
	}}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	entry, err := service.Get(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "div-1", entry.DivisionID)

	_, err = service.Get(context.Background(), "nope")
	var typed *appErrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, appErrors.ErrNotFound.Code, typed.Code)
}

func TestEntryServiceDelete(t *testing.T) {
	repo := &mockEntryRepo{items: map[string]*models.Entry{
		"e1": {ID: "e1"},
	}}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	require.NoError(t, service.Delete(context.Background(), "e1"))
	assert.Equal(t, []string{"e1"}, repo.deleted)

	err := service.Delete(context.Background(), "nope")
	var typed *appErrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, appErrors.ErrNotFound.Code, typed.Code)
}

func TestEntryServiceList(t *testing.T) {
	repo := &mockEntryRepo{
		listResult: []models.Entry{{ID: "e1"}, {ID: "e2"}},
		listTotal:  12,
	}
	service := NewEntryService(repo, theoryCatalog(), validator.New(), nil, zap.NewNop())

	entries, pagination, err := service.List(context.Background(), models.EntryFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	require.NotNil(t, pagination)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 12, pagination.TotalCount)
}
