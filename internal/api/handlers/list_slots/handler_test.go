package list_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labims/LIMS-BookingService/internal/service/slots/models"
)

type stubService struct {
	lastReq *models.ListSlotsRequest
	err     error
}

func (s *stubService) ListInRange(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.SlotListResponse{Slots: []models.SlotResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestHandler(service SlotsService, now time.Time) *Handler {
	handler := NewHandler(service, nopLogger{})
	handler.timeProvider = &fixedTimeProvider{now: now}
	return handler
}

func doRequest(handler *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()
	handler.Handle(recorder, req)
	return recorder
}

func TestHandle_DefaultWindowUsesLocalCalendarDay(t *testing.T) {
	// Раннее утро в зоне UTC+12: по UTC еще вчера,
	// но окно по умолчанию должно начинаться с местного "сегодня"
	zone := time.FixedZone("UTC+12", 12*60*60)
	now := time.Date(2025, 6, 1, 1, 30, 0, 0, zone)

	service := &stubService{}
	recorder := doRequest(newTestHandler(service, now), "/api/v1/slots")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, service.lastReq)

	wantStart := time.Date(2025, 6, 1, 0, 0, 0, 0, zone)
	assert.True(t, service.lastReq.StartDate.Equal(wantStart),
		"StartDate = %v, want %v", service.lastReq.StartDate, wantStart)
	assert.True(t, service.lastReq.EndDate.Equal(wantStart.AddDate(0, 0, defaultRangeDays)))
}

func TestHandle_LoneStartDateShiftsWindow(t *testing.T) {
	service := &stubService{}
	recorder := doRequest(newTestHandler(service, time.Now()), "/api/v1/slots?startDate=2025-06-10")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, service.lastReq)

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), service.lastReq.StartDate)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), service.lastReq.EndDate)
}

func TestHandle_ExplicitRange(t *testing.T) {
	service := &stubService{}
	recorder := doRequest(newTestHandler(service, time.Now()),
		"/api/v1/slots?startDate=2025-06-10&endDate=2025-06-12")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, service.lastReq)

	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), service.lastReq.EndDate)
}

func TestHandle_InvalidDate(t *testing.T) {
	service := &stubService{}
	recorder := doRequest(newTestHandler(service, time.Now()), "/api/v1/slots?startDate=10.06.2025")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Nil(t, service.lastReq)
}
