package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
)

// CatalogRepository reads the reference data owned by the external catalog:
// hierarchy nodes, subjects, academic years, days, time slots, staff and
// locations. Everything here is read-only from the engine's perspective.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// NodesByLevel returns every node at a hierarchy level, used for the root
// faculty listing where no parent applies.
func (r *CatalogRepository) NodesByLevel(ctx context.Context, level models.HierarchyLevel) ([]models.OrgNode, error) {
	const query = `SELECT id, name, level, parent_id FROM org_nodes WHERE level = $1 ORDER BY name ASC`
	var nodes []models.OrgNode
	if err := r.db.SelectContext(ctx, &nodes, query, level); err != nil {
		return nil, fmt.Errorf("list org nodes by level: %w", err)
	}
	return nodes, nil
}

// NodesByParent returns the child nodes at a level under one parent.
func (r *CatalogRepository) NodesByParent(ctx context.Context, level models.HierarchyLevel, parentID string) ([]models.OrgNode, error) {
	const query = `SELECT id, name, level, parent_id FROM org_nodes WHERE level = $1 AND parent_id = $2 ORDER BY name ASC`
	var nodes []models.OrgNode
	if err := r.db.SelectContext(ctx, &nodes, query, level, parentID); err != nil {
		return nil, fmt.Errorf("list org nodes by parent: %w", err)
	}
	return nodes, nil
}

// SubjectsByClass returns the subjects taught to an academic class.
func (r *CatalogRepository) SubjectsByClass(ctx context.Context, academicClassID string) ([]models.Subject, error) {
	const query = `SELECT id, name, subject_type, academic_class_id FROM subjects WHERE academic_class_id = $1 ORDER BY name ASC`
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query, academicClassID); err != nil {
		return nil, fmt.Errorf("list subjects by class: %w", err)
	}
	return subjects, nil
}

// FindSubject loads one subject by id.
func (r *CatalogRepository) FindSubject(ctx context.Context, id string) (*models.Subject, error) {
	const query = `SELECT id, name, subject_type, academic_class_id FROM subjects WHERE id = $1`
	var subject models.Subject
	if err := r.db.GetContext(ctx, &subject, query, id); err != nil {
		return nil, err
	}
	return &subject, nil
}

// CurrentAcademicYears returns the active academic years for a faculty.
func (r *CatalogRepository) CurrentAcademicYears(ctx context.Context, facultyID string) ([]models.AcademicYear, error) {
	const query = `SELECT id, code, faculty_id, current FROM academic_years WHERE faculty_id = $1 AND current = TRUE ORDER BY code DESC`
	var years []models.AcademicYear
	if err := r.db.SelectContext(ctx, &years, query, facultyID); err != nil {
		return nil, fmt.Errorf("list current academic years: %w", err)
	}
	return years, nil
}

// Days returns the fixed teaching-day set in calendar order.
func (r *CatalogRepository) Days(ctx context.Context) ([]models.Day, error) {
	const query = `SELECT id, name FROM days ORDER BY sort_order ASC`
	var days []models.Day
	if err := r.db.SelectContext(ctx, &days, query); err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	return days, nil
}

// TimeSlotsByProgram returns a program's slots ordered by start time.
func (r *CatalogRepository) TimeSlotsByProgram(ctx context.Context, programID string) ([]models.TimeSlot, error) {
	const query = `SELECT id, start_time, end_time, program_id FROM time_slots WHERE program_id = $1 ORDER BY start_time ASC`
	var slots []models.TimeSlot
	if err := r.db.SelectContext(ctx, &slots, query, programID); err != nil {
		return nil, fmt.Errorf("list time slots by program: %w", err)
	}
	return slots, nil
}

// StaffByDepartment returns a department's teachers.
func (r *CatalogRepository) StaffByDepartment(ctx context.Context, departmentID string) ([]models.Staff, error) {
	const query = `SELECT id, full_name, department_id FROM staff WHERE department_id = $1 ORDER BY full_name ASC`
	var staff []models.Staff
	if err := r.db.SelectContext(ctx, &staff, query, departmentID); err != nil {
		return nil, fmt.Errorf("list staff by department: %w", err)
	}
	return staff, nil
}

// LocationsByDepartment returns a department's rooms.
func (r *CatalogRepository) LocationsByDepartment(ctx context.Context, departmentID string) ([]models.Location, error) {
	const query = `SELECT id, name, capacity, department_id FROM locations WHERE department_id = $1 ORDER BY name ASC`
	var locations []models.Location
	if err := r.db.SelectContext(ctx, &locations, query, departmentID); err != nil {
		return nil, fmt.Errorf("list locations by department: %w", err)
	}
	return locations, nil
}
