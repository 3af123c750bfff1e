package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aakib-hotelwala/ttm-api/internal/middleware"
	"github.com/aakib-hotelwala/ttm-api/internal/models"
	"github.com/aakib-hotelwala/ttm-api/internal/service"
	appErrors "github.com/aakib-hotelwala/ttm-api/pkg/errors"
	"github.com/aakib-hotelwala/ttm-api/pkg/response"
)

type entryLifecycle interface {
	List(ctx context.Context, filter models.EntryFilter) ([]models.Entry, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Entry, error)
	Create(ctx context.Context, payload service.EntryPayload, createdBy string) (*models.Entry, error)
	Update(ctx context.Context, id string, payload service.EntryPayload) (*models.Entry, error)
	Delete(ctx context.Context, id string) error
}

// EntryHandler manages timetable entry endpoints.
type EntryHandler struct {
	service entryLifecycle
}

// NewEntryHandler constructs handler.
func NewEntryHandler(svc entryLifecycle) *EntryHandler {
	return &EntryHandler{service: svc}
}

// List godoc
// @Summary List timetable entries
// @Tags Entries
// @Produce json
// @Param academicYearId query string false "Filter by academic year"
// @Param facultyId query string false "Filter by faculty"
// @Param departmentId query string false "Filter by department"
// @Param programId query string false "Filter by program"
// @Param divisionId query string false "Filter by division"
// @Param staffId query string false "Filter by teacher"
// @Param dayId query string false "Filter by day"
// @Param timeSlotId query string false "Filter by time slot"
// @Param mine query bool false "Only the caller's entries"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	var filter models.EntryFilter
	filter.AcademicYearID = c.Query("academicYearId")
	filter.FacultyID = c.Query("facultyId")
	filter.DepartmentID = c.Query("departmentId")
	filter.ProgramID = c.Query("programId")
	filter.DivisionID = c.Query("divisionId")
	filter.StaffID = c.Query("staffId")
	filter.DayID = c.Query("dayId")
	filter.TimeSlotID = c.Query("timeSlotId")
	if c.Query("mine") == "true" {
		filter.OwnerID = middleware.CallerID(c)
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil {
		filter.PageSize = limit
	}

	entries, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, pagination)
}

// Get godoc
// @Summary Get one timetable entry
// @Tags Entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Envelope
// @Router /entries/{id} [get]
func (h *EntryHandler) Get(c *gin.Context) {
	entry, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// Create godoc
// @Summary Create timetable entry
// @Tags Entries
// @Accept json
// @Produce json
// @Param payload body service.EntryPayload true "Entry payload"
// @Success 201 {object} response.Envelope
// @Router /entries [post]
func (h *EntryHandler) Create(c *gin.Context) {
	var payload service.EntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.Create(c.Request.Context(), payload, middleware.CallerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Update godoc
// @Summary Update timetable entry
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param payload body service.EntryPayload true "Entry payload"
// @Success 200 {object} response.Envelope
// @Router /entries/{id} [put]
func (h *EntryHandler) Update(c *gin.Context) {
	var payload service.EntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// Delete godoc
// @Summary Delete timetable entry
// @Tags Entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204
// @Router /entries/{id} [delete]
func (h *EntryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
