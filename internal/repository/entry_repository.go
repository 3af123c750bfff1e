package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
)

const entryColumns = "id, academic_year_id, faculty_id, department_id, program_id, academic_class_id, division_id, batch_id, subject_id, day_id, time_slot_id, staff_id, location_id, created_by, created_at, updated_at"

// EntryRepository provides persistence for timetable entries. The table
// carries composite unique indexes on (day_id, time_slot_id, staff_id),
// (day_id, time_slot_id, location_id) and (day_id, time_slot_id,
// division_id, batch_id): the database remains the authoritative conflict
// guard, the in-process detector is the fast pre-check.
type EntryRepository struct {
	db *sqlx.DB
}

// NewEntryRepository creates a new entry repository.
func NewEntryRepository(db *sqlx.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// List returns entries with optional scope filtering and pagination.
func (r *EntryRepository) List(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int, error) {
	base := "FROM timetable_entries WHERE 1=1"
	var conditions []string
	var args []interface{}

	appendCond := func(column, value string) {
		if value == "" {
			return
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	appendCond("academic_year_id", filter.AcademicYearID)
	appendCond("faculty_id", filter.FacultyID)
	appendCond("department_id", filter.DepartmentID)
	appendCond("program_id", filter.ProgramID)
	appendCond("division_id", filter.DivisionID)
	appendCond("staff_id", filter.StaffID)
	appendCond("day_id", filter.DayID)
	appendCond("time_slot_id", filter.TimeSlotID)
	appendCond("created_by", filter.OwnerID)

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY day_id ASC, time_slot_id ASC LIMIT %d OFFSET %d", entryColumns, base, size, offset)
	var entries []models.Entry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	return entries, total, nil
}

// FindByID loads an entry by id.
func (r *EntryRepository) FindByID(ctx context.Context, id string) (*models.Entry, error) {
	query := fmt.Sprintf("SELECT %s FROM timetable_entries WHERE id = $1", entryColumns)
	var entry models.Entry
	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListBySlot returns the entries occupying one (day, time slot) within an
// academic year, the working set for conflict evaluation.
func (r *EntryRepository) ListBySlot(ctx context.Context, academicYearID, dayID, timeSlotID string) ([]models.Entry, error) {
	query := fmt.Sprintf("SELECT %s FROM timetable_entries WHERE academic_year_id = $1 AND day_id = $2 AND time_slot_id = $3", entryColumns)
	var entries []models.Entry
	if err := r.db.SelectContext(ctx, &entries, query, academicYearID, dayID, timeSlotID); err != nil {
		return nil, fmt.Errorf("list entries by slot: %w", err)
	}
	return entries, nil
}

// ListByDay returns an academic year's entries for one day, the working set
// for availability filtering across time slots.
func (r *EntryRepository) ListByDay(ctx context.Context, academicYearID, dayID string) ([]models.Entry, error) {
	query := fmt.Sprintf("SELECT %s FROM timetable_entries WHERE academic_year_id = $1 AND day_id = $2", entryColumns)
	var entries []models.Entry
	if err := r.db.SelectContext(ctx, &entries, query, academicYearID, dayID); err != nil {
		return nil, fmt.Errorf("list entries by day: %w", err)
	}
	return entries, nil
}

// ListByYear returns every entry of an academic year.
func (r *EntryRepository) ListByYear(ctx context.Context, academicYearID string) ([]models.Entry, error) {
	query := fmt.Sprintf("SELECT %s FROM timetable_entries WHERE academic_year_id = $1", entryColumns)
	var entries []models.Entry
	if err := r.db.SelectContext(ctx, &entries, query, academicYearID); err != nil {
		return nil, fmt.Errorf("list entries by year: %w", err)
	}
	return entries, nil
}

// Create stores a new entry record.
func (r *EntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	const query = `INSERT INTO timetable_entries (id, academic_year_id, faculty_id, department_id, program_id, academic_class_id, division_id, batch_id, subject_id, day_id, time_slot_id, staff_id, location_id, created_by, created_at, updated_at) VALUES (:id, :academic_year_id, :faculty_id, :department_id, :program_id, :academic_class_id, :division_id, :batch_id, :subject_id, :day_id, :time_slot_id, :staff_id, :location_id, :created_by, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// Update modifies an entry record.
func (r *EntryRepository) Update(ctx context.Context, entry *models.Entry) error {
	entry.UpdatedAt = time.Now().UTC()
	const query = `UPDATE timetable_entries SET academic_year_id = :academic_year_id, faculty_id = :faculty_id, department_id = :department_id, program_id = :program_id, academic_class_id = :academic_class_id, division_id = :division_id, batch_id = :batch_id, subject_id = :subject_id, day_id = :day_id, time_slot_id = :time_slot_id, staff_id = :staff_id, location_id = :location_id, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// Delete removes an entry by id.
func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timetable_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique-index
// violation, the signal that a concurrent writer won the slot between the
// pre-check and the insert.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
