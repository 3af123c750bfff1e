package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
)

func newCatalogRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCatalogRepositoryNodesByLevel(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "level", "parent_id"}).
		AddRow("fac-1", "Science", "faculty", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, level, parent_id FROM org_nodes WHERE level = $1 ORDER BY name ASC")).
		WithArgs(models.LevelFaculty).
		WillReturnRows(rows)

	nodes, err := repo.NodesByLevel(context.Background(), models.LevelFaculty)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Science", nodes[0].Name)
	assert.Nil(t, nodes[0].ParentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryNodesByParent(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "level", "parent_id"}).
		AddRow("dep-1", "Chemistry", "department", "fac-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, level, parent_id FROM org_nodes WHERE level = $1 AND parent_id = $2 ORDER BY name ASC")).
		WithArgs(models.LevelDepartment, "fac-1").
		WillReturnRows(rows)

	nodes, err := repo.NodesByParent(context.Background(), models.LevelDepartment, "fac-1")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.NotNil(t, nodes[0].ParentID)
	assert.Equal(t, "fac-1", *nodes[0].ParentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositorySubjectsByClass(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "subject_type", "academic_class_id"}).
		AddRow("sub-1", "Calculus", "THEORY", "class-1").
		AddRow("sub-2", "Chemistry Lab", "PRACTICAL", "class-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, subject_type, academic_class_id FROM subjects WHERE academic_class_id = $1 ORDER BY name ASC")).
		WithArgs("class-1").
		WillReturnRows(rows)

	subjects, err := repo.SubjectsByClass(context.Background(), "class-1")
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.False(t, subjects[0].RequiresBatch())
	assert.True(t, subjects[1].RequiresBatch())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryFindSubjectNotFound(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, subject_type, academic_class_id FROM subjects WHERE id = $1")).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindSubject(context.Background(), "nope")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryCurrentAcademicYears(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "code", "faculty_id", "current"}).
		AddRow("ay-1", "2026-27", "fac-1", true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, code, faculty_id, current FROM academic_years WHERE faculty_id = $1 AND current = TRUE ORDER BY code DESC")).
		WithArgs("fac-1").
		WillReturnRows(rows)

	years, err := repo.CurrentAcademicYears(context.Background(), "fac-1")
	require.NoError(t, err)
	require.Len(t, years, 1)
	assert.True(t, years[0].Current)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryDays(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow("mon", "Monday").
		AddRow("tue", "Tuesday")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM days ORDER BY sort_order ASC")).
		WillReturnRows(rows)

	days, err := repo.Days(context.Background())
	require.NoError(t, err)
	assert.Len(t, days, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryTimeSlotsByProgram(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "start_time", "end_time", "program_id"}).
		AddRow("slot-1", "09:00", "10:00", "prog-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, start_time, end_time, program_id FROM time_slots WHERE program_id = $1 ORDER BY start_time ASC")).
		WithArgs("prog-1").
		WillReturnRows(rows)

	slots, err := repo.TimeSlotsByProgram(context.Background(), "prog-1")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryStaffByDepartment(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "full_name", "department_id"}).
		AddRow("staff-1", "Prof A", "dep-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, department_id FROM staff WHERE department_id = $1 ORDER BY full_name ASC")).
		WithArgs("dep-1").
		WillReturnRows(rows)

	staff, err := repo.StaffByDepartment(context.Background(), "dep-1")
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "Prof A", staff[0].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryLocationsByDepartment(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "capacity", "department_id"}).
		AddRow("room-1", "Room 1", 40, "dep-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, capacity, department_id FROM locations WHERE department_id = $1 ORDER BY name ASC")).
		WithArgs("dep-1").
		WillReturnRows(rows)

	locations, err := repo.LocationsByDepartment(context.Background(), "dep-1")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, 40, locations[0].Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
