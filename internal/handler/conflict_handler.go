package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
	"github.com/aakib-hotelwala/ttm-api/internal/service"
	appErrors "github.com/aakib-hotelwala/ttm-api/pkg/errors"
	"github.com/aakib-hotelwala/ttm-api/pkg/response"
)

type conflictChecker interface {
	Check(ctx context.Context, req service.CandidateCheckRequest) (models.ConflictReport, error)
	CheckSlot(ctx context.Context, req service.SlotCheckRequest) (bool, error)
	CheckStaff(ctx context.Context, req service.StaffCheckRequest) (bool, error)
	CheckLocation(ctx context.Context, req service.LocationCheckRequest) (bool, error)
}

type availabilityFilter interface {
	Days(ctx context.Context, req service.AvailabilityRequest) ([]models.Day, error)
	TimeSlots(ctx context.Context, req service.AvailabilityRequest) ([]models.TimeSlot, error)
	Staff(ctx context.Context, req service.AvailabilityRequest) ([]models.Staff, error)
	Locations(ctx context.Context, req service.AvailabilityRequest) ([]models.Location, error)
}

// ConflictHandler exposes the pre-check and availability endpoints used to
// narrow choices before submission.
type ConflictHandler struct {
	conflicts    conflictChecker
	availability availabilityFilter
}

// NewConflictHandler constructs handler.
func NewConflictHandler(conflicts conflictChecker, availability availabilityFilter) *ConflictHandler {
	return &ConflictHandler{conflicts: conflicts, availability: availability}
}

type conflictFlag struct {
	Conflict bool `json:"conflict"`
}

// Check godoc
// @Summary Check a full candidate on all three axes
// @Tags Conflicts
// @Accept json
// @Produce json
// @Param payload body service.CandidateCheckRequest true "Candidate"
// @Success 200 {object} response.Envelope
// @Router /conflicts/check [post]
func (h *ConflictHandler) Check(c *gin.Context) {
	var req service.CandidateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	report, err := h.conflicts.Check(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// CheckSlot godoc
// @Summary Check the student group axis for one slot
// @Tags Conflicts
// @Accept json
// @Produce json
// @Param payload body service.SlotCheckRequest true "Slot check"
// @Success 200 {object} response.Envelope
// @Router /conflicts/check-slot [post]
func (h *ConflictHandler) CheckSlot(c *gin.Context) {
	var req service.SlotCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	conflict, err := h.conflicts.CheckSlot(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, conflictFlag{Conflict: conflict}, nil)
}

// CheckStaff godoc
// @Summary Check the staff axis for one slot
// @Tags Conflicts
// @Accept json
// @Produce json
// @Param payload body service.StaffCheckRequest true "Staff check"
// @Success 200 {object} response.Envelope
// @Router /conflicts/check-staff [post]
func (h *ConflictHandler) CheckStaff(c *gin.Context) {
	var req service.StaffCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	conflict, err := h.conflicts.CheckStaff(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, conflictFlag{Conflict: conflict}, nil)
}

// CheckLocation godoc
// @Summary Check the location axis for one slot
// @Tags Conflicts
// @Accept json
// @Produce json
// @Param payload body service.LocationCheckRequest true "Location check"
// @Success 200 {object} response.Envelope
// @Router /conflicts/check-location [post]
func (h *ConflictHandler) CheckLocation(c *gin.Context) {
	var req service.LocationCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	conflict, err := h.conflicts.CheckLocation(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, conflictFlag{Conflict: conflict}, nil)
}

// AvailableDays godoc
// @Summary Days the candidate could occupy without conflict
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body service.AvailabilityRequest true "Partial candidate"
// @Success 200 {object} response.Envelope
// @Router /availability/days [post]
func (h *ConflictHandler) AvailableDays(c *gin.Context) {
	var req service.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	days, err := h.availability.Days(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, days, nil)
}

// AvailableTimeSlots godoc
// @Summary Time slots the candidate could occupy without conflict
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body service.AvailabilityRequest true "Partial candidate"
// @Success 200 {object} response.Envelope
// @Router /availability/timeslots [post]
func (h *ConflictHandler) AvailableTimeSlots(c *gin.Context) {
	var req service.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	slots, err := h.availability.TimeSlots(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots, nil)
}

// AvailableStaff godoc
// @Summary Teachers free in the candidate's slot
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body service.AvailabilityRequest true "Partial candidate"
// @Success 200 {object} response.Envelope
// @Router /availability/staff [post]
func (h *ConflictHandler) AvailableStaff(c *gin.Context) {
	var req service.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	staff, err := h.availability.Staff(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staff, nil)
}

// AvailableLocations godoc
// @Summary Rooms free in the candidate's slot
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body service.AvailabilityRequest true "Partial candidate"
// @Success 200 {object} response.Envelope
// @Router /availability/locations [post]
func (h *ConflictHandler) AvailableLocations(c *gin.Context) {
	var req service.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	locations, err := h.availability.Locations(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, locations, nil)
}
