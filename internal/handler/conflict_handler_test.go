package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aakib-hotelwala/ttm-api/internal/models"
	"github.com/aakib-hotelwala/ttm-api/internal/service"
	appErrors "github.com/aakib-hotelwala/ttm-api/pkg/errors"
)

type conflictServiceMock struct {
	report      models.ConflictReport
	checkErr    error
	slotFlag    bool
	staffFlag   bool
	locFlag     bool
	lastSlotReq service.SlotCheckRequest
}

func (m *conflictServiceMock) Check(ctx context.Context, req service.CandidateCheckRequest) (models.ConflictReport, error) {
	return m.report, m.checkErr
}

func (m *conflictServiceMock) CheckSlot(ctx context.Context, req service.SlotCheckRequest) (bool, error) {
	m.lastSlotReq = req
	return m.slotFlag, nil
}

func (m *conflictServiceMock) CheckStaff(ctx context.Context, req service.StaffCheckRequest) (bool, error) {
	return m.staffFlag, nil
}

func (m *conflictServiceMock) CheckLocation(ctx context.Context, req service.LocationCheckRequest) (bool, error) {
	return m.locFlag, nil
}

type availabilityServiceMock struct {
	days      []models.Day
	slots     []models.TimeSlot
	staff     []models.Staff
	locations []models.Location
	err       error
}

func (m *availabilityServiceMock) Days(ctx context.Context, req service.AvailabilityRequest) ([]models.Day, error) {
	return m.days, m.err
}

func (m *availabilityServiceMock) TimeSlots(ctx context.Context, req service.AvailabilityRequest) ([]models.TimeSlot, error) {
	return m.slots, m.err
}

func (m *availabilityServiceMock) Staff(ctx context.Context, req service.AvailabilityRequest) ([]models.Staff, error) {
	return m.staff, m.err
}

func (m *availabilityServiceMock) Locations(ctx context.Context, req service.AvailabilityRequest) ([]models.Location, error) {
	return m.locations, m.err
}

func postJSON(t *testing.T, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return w, c
}

func TestConflictHandlerCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &conflictServiceMock{report: models.ConflictReport{StaffConflict: true}}
	handler := NewConflictHandler(mockSvc, &availabilityServiceMock{})

	w, c := postJSON(t, service.CandidateCheckRequest{})
	handler.Check(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.ConflictReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.StaffConflict)
	assert.False(t, envelope.Data.DivisionConflict)
}

func TestConflictHandlerCheckValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &conflictServiceMock{checkErr: appErrors.MissingField("dayId")}
	handler := NewConflictHandler(mockSvc, &availabilityServiceMock{})

	w, c := postJSON(t, service.CandidateCheckRequest{})
	handler.Check(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConflictHandlerCheckSlot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &conflictServiceMock{slotFlag: true}
	handler := NewConflictHandler(mockSvc, &availabilityServiceMock{})

	w, c := postJSON(t, service.SlotCheckRequest{
		AcademicYearID: "ay-1", DivisionID: "div-1", DayID: "mon", TimeSlotID: "slot-1",
	})
	handler.CheckSlot(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Conflict bool `json:"conflict"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Conflict)
	assert.Equal(t, "div-1", mockSvc.lastSlotReq.DivisionID)
}

func TestConflictHandlerCheckStaffAndLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &conflictServiceMock{staffFlag: false, locFlag: true}
	handler := NewConflictHandler(mockSvc, &availabilityServiceMock{})

	w, c := postJSON(t, service.StaffCheckRequest{
		AcademicYearID: "ay-1", StaffID: "staff-1", DayID: "mon", TimeSlotID: "slot-1",
	})
	handler.CheckStaff(c)
	require.Equal(t, http.StatusOK, w.Code)

	w, c = postJSON(t, service.LocationCheckRequest{
		AcademicYearID: "ay-1", LocationID: "room-1", DayID: "mon", TimeSlotID: "slot-1",
	})
	handler.CheckLocation(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Conflict bool `json:"conflict"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Conflict)
}

func TestConflictHandlerInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewConflictHandler(&conflictServiceMock{}, &availabilityServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"day_id":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.CheckSlot(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConflictHandlerAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAvail := &availabilityServiceMock{
		days:  []models.Day{{ID: "tue", Name: "Tuesday"}},
		slots: []models.TimeSlot{{ID: "slot-2"}},
	}
	handler := NewConflictHandler(&conflictServiceMock{}, mockAvail)

	w, c := postJSON(t, service.AvailabilityRequest{})
	handler.AvailableDays(c)
	require.Equal(t, http.StatusOK, w.Code)

	var daysEnvelope struct {
		Data []models.Day `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &daysEnvelope))
	require.Len(t, daysEnvelope.Data, 1)
	assert.Equal(t, "tue", daysEnvelope.Data[0].ID)

	w, c = postJSON(t, service.AvailabilityRequest{})
	handler.AvailableTimeSlots(c)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestConflictHandlerAvailabilityUpstreamDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAvail := &availabilityServiceMock{
		err: appErrors.Clone(appErrors.ErrUpstreamUnavailable, "failed to load staff"),
	}
	handler := NewConflictHandler(&conflictServiceMock{}, mockAvail)

	w, c := postJSON(t, service.AvailabilityRequest{})
	handler.AvailableStaff(c)
	require.Equal(t, http.StatusBadGateway, w.Code)
}
