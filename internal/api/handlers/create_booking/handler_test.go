package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labims/LIMS-BookingService/internal/api/handlers"
	"github.com/labims/LIMS-BookingService/internal/api/middleware"
	createBooking "github.com/labims/LIMS-BookingService/internal/usecase/create_booking"
)

type stubUseCase struct {
	executeFunc func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

func (s *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return s.executeFunc(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRouter(useCase CreateBookingUseCase) *mux.Router {
	handler := NewHandler(useCase, nopLogger{})

	router := mux.NewRouter()
	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", handler.Handle).Methods(http.MethodPost)

	return router
}

func validBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(CreateBookingRequest{
		ResourceType: "EQUIPMENT",
		ResourceID:   3,
		Date:         "2025-06-02",
		StartTime:    "09:00",
		EndTime:      "10:00",
		Purpose:      "калибровка осциллографа",
	})
	require.NoError(t, err)

	return body
}

func doRequest(t *testing.T, router *mux.Router, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "42")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestHandle_Created(t *testing.T) {
	useCase := &stubUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			assert.Equal(t, int64(42), req.UserID)
			return &createBooking.Response{ID: 15, Status: "PENDING"}, nil
		},
	}

	recorder := doRequest(t, newTestRouter(useCase), validBody(t))

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(15), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestHandle_BusinessRejectionsReturnBadRequest(t *testing.T) {
	// Бизнес-отказы — ответ 400 с сообщением, а не 409 и не 500
	tests := []struct {
		name       string
		useCaseErr error
		wantMsg    string
	}{
		{"slot already booked", createBooking.ErrSlotAlreadyBooked, msgSlotAlreadyBooked},
		{"resource unavailable", createBooking.ErrResourceUnavailable, msgResourceUnavailable},
		{"capacity exceeded", createBooking.ErrCapacityExceeded, msgCapacityExceeded},
		{"slot in past", createBooking.ErrSlotInPast, msgSlotInPast},
		{"invalid slot range", createBooking.ErrInvalidSlotRange, msgInvalidSlotRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := &stubUseCase{
				executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
					return nil, tt.useCaseErr
				},
			}

			recorder := doRequest(t, newTestRouter(useCase), validBody(t))

			require.Equal(t, http.StatusBadRequest, recorder.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"user not found", createBooking.ErrUserNotFound, http.StatusNotFound},
		{"resource not found", createBooking.ErrResourceNotFound, http.StatusNotFound},
		{"slot not found", createBooking.ErrSlotNotFound, http.StatusNotFound},
		{"slot creation forbidden", createBooking.ErrSlotCreationForbidden, http.StatusForbidden},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := &stubUseCase{
				executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
					return nil, tt.useCaseErr
				},
			}

			recorder := doRequest(t, newTestRouter(useCase), validBody(t))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	useCase := &stubUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			t.Fatal("use case must not be called for malformed body")
			return nil, nil
		},
	}

	recorder := doRequest(t, newTestRouter(useCase), []byte(`{"resourceType":`))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	useCase := &stubUseCase{
		executeFunc: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			t.Fatal("use case must not be called for unparseable date")
			return nil, nil
		},
	}

	body, err := json.Marshal(CreateBookingRequest{
		ResourceType: "EQUIPMENT",
		ResourceID:   3,
		Date:         "02.06.2025",
		StartTime:    "09:00",
		EndTime:      "10:00",
		Purpose:      "калибровка",
	})
	require.NoError(t, err)

	recorder := doRequest(t, newTestRouter(useCase), body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
