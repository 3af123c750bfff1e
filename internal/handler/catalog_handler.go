package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
	"github.com/aakib-hotelwala/ttm-api/internal/timetable"
	"github.com/aakib-hotelwala/ttm-api/pkg/response"
)

type hierarchyResolver interface {
	Faculties(ctx context.Context) []models.OrgNode
	ChildOptions(ctx context.Context, level models.HierarchyLevel, parentID string) []models.OrgNode
	SubjectsFor(ctx context.Context, academicClassID string) []models.Subject
	AcademicYearsFor(ctx context.Context, facultyID string) []models.AcademicYear
	DependentFields(field timetable.Field) []timetable.Field
}

type slotCatalogReader interface {
	Days(ctx context.Context) []models.Day
	TimeSlots(ctx context.Context, programID string) []models.TimeSlot
	Staff(ctx context.Context, departmentID string) []models.Staff
	Locations(ctx context.Context, departmentID string) []models.Location
}

// CatalogHandler serves the dependent-option and slot-universe reads that
// drive incremental candidate assembly.
type CatalogHandler struct {
	hierarchy hierarchyResolver
	catalog   slotCatalogReader
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(hierarchy hierarchyResolver, catalog slotCatalogReader) *CatalogHandler {
	return &CatalogHandler{hierarchy: hierarchy, catalog: catalog}
}

// Faculties godoc
// @Summary List faculties
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /faculties [get]
func (h *CatalogHandler) Faculties(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.hierarchy.Faculties(c.Request.Context()), nil)
}

// Departments godoc
// @Summary List departments of a faculty
// @Tags Catalog
// @Produce json
// @Param facultyId query string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Router /departments [get]
func (h *CatalogHandler) Departments(c *gin.Context) {
	nodes := h.hierarchy.ChildOptions(c.Request.Context(), models.LevelDepartment, c.Query("facultyId"))
	response.JSON(c, http.StatusOK, nodes, nil)
}

// Programs godoc
// @Summary List programs of a department
// @Tags Catalog
// @Produce json
// @Param departmentId query string true "Department ID"
// @Success 200 {object} response.Envelope
// @Router /programs [get]
func (h *CatalogHandler) Programs(c *gin.Context) {
	nodes := h.hierarchy.ChildOptions(c.Request.Context(), models.LevelProgram, c.Query("departmentId"))
	response.JSON(c, http.StatusOK, nodes, nil)
}

// Classes godoc
// @Summary List academic classes of a program
// @Tags Catalog
// @Produce json
// @Param programId query string true "Program ID"
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *CatalogHandler) Classes(c *gin.Context) {
	nodes := h.hierarchy.ChildOptions(c.Request.Context(), models.LevelAcademicClass, c.Query("programId"))
	response.JSON(c, http.StatusOK, nodes, nil)
}

// Divisions godoc
// @Summary List divisions of an academic class
// @Tags Catalog
// @Produce json
// @Param academicClassId query string true "Academic class ID"
// @Success 200 {object} response.Envelope
// @Router /divisions [get]
func (h *CatalogHandler) Divisions(c *gin.Context) {
	nodes := h.hierarchy.ChildOptions(c.Request.Context(), models.LevelDivision, c.Query("academicClassId"))
	response.JSON(c, http.StatusOK, nodes, nil)
}

// Batches godoc
// @Summary List batches of a division
// @Tags Catalog
// @Produce json
// @Param divisionId query string true "Division ID"
// @Success 200 {object} response.Envelope
// @Router /batches [get]
func (h *CatalogHandler) Batches(c *gin.Context) {
	nodes := h.hierarchy.ChildOptions(c.Request.Context(), models.LevelBatch, c.Query("divisionId"))
	response.JSON(c, http.StatusOK, nodes, nil)
}

// Subjects godoc
// @Summary List subjects of an academic class
// @Tags Catalog
// @Produce json
// @Param academicClassId query string true "Academic class ID"
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *CatalogHandler) Subjects(c *gin.Context) {
	subjects := h.hierarchy.SubjectsFor(c.Request.Context(), c.Query("academicClassId"))
	response.JSON(c, http.StatusOK, subjects, nil)
}

// AcademicYears godoc
// @Summary List current academic years of a faculty
// @Tags Catalog
// @Produce json
// @Param facultyId query string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Router /academic-years [get]
func (h *CatalogHandler) AcademicYears(c *gin.Context) {
	years := h.hierarchy.AcademicYearsFor(c.Request.Context(), c.Query("facultyId"))
	response.JSON(c, http.StatusOK, years, nil)
}

// Days godoc
// @Summary List teaching days
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /days [get]
func (h *CatalogHandler) Days(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Days(c.Request.Context()), nil)
}

// TimeSlots godoc
// @Summary List time slots of a program
// @Tags Catalog
// @Produce json
// @Param programId query string true "Program ID"
// @Success 200 {object} response.Envelope
// @Router /timeslots [get]
func (h *CatalogHandler) TimeSlots(c *gin.Context) {
	slots := h.catalog.TimeSlots(c.Request.Context(), c.Query("programId"))
	response.JSON(c, http.StatusOK, slots, nil)
}

// Staff godoc
// @Summary List teachers of a department
// @Tags Catalog
// @Produce json
// @Param departmentId query string true "Department ID"
// @Success 200 {object} response.Envelope
// @Router /staff [get]
func (h *CatalogHandler) Staff(c *gin.Context) {
	staff := h.catalog.Staff(c.Request.Context(), c.Query("departmentId"))
	response.JSON(c, http.StatusOK, staff, nil)
}

// Locations godoc
// @Summary List rooms of a department
// @Tags Catalog
// @Produce json
// @Param departmentId query string true "Department ID"
// @Success 200 {object} response.Envelope
// @Router /locations [get]
func (h *CatalogHandler) Locations(c *gin.Context) {
	locations := h.catalog.Locations(c.Request.Context(), c.Query("departmentId"))
	response.JSON(c, http.StatusOK, locations, nil)
}

// DependentFields godoc
// @Summary List candidate fields invalidated by a change to one field
// @Tags Catalog
// @Produce json
// @Param field path string true "Field name"
// @Success 200 {object} response.Envelope
// @Router /fields/{field}/dependents [get]
func (h *CatalogHandler) DependentFields(c *gin.Context) {
	fields := h.hierarchy.DependentFields(timetable.Field(c.Param("field")))
	if fields == nil {
		fields = []timetable.Field{}
	}
	response.JSON(c, http.StatusOK, fields, nil)
}
