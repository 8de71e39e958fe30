package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labims/LIMS-BookingService/internal/api/handlers"
	"github.com/labims/LIMS-BookingService/internal/api/middleware"
	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/internal/service/bookings"
	"github.com/labims/LIMS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidResourceID = "некорректный параметр resourceId"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput      = "некорректные параметры запроса"
	msgUserNotFound      = "пользователь не найден"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query параметры: resourceType, resourceId, status, startDate, endDate (все опциональны)
// Видимость сужается по роли актора на стороне сервиса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUserNotFound)
		return
	}

	req, err := parseQuery(r, actorID)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: user_id=%d, error=%v", actorID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid input: user_id=%d, error=%v", actorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /bookings - User not found: user_id=%d", actorID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request, actorID int64) (*models.ListBookingsRequest, error) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{ActorID: actorID}

	if v := query.Get("resourceType"); v != "" {
		req.ResourceType = &v
	}

	if v := query.Get("resourceId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.New(msgInvalidResourceID)
		}
		req.ResourceID = &id
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("startDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, errors.New(msgInvalidDate)
		}
		req.StartDate = &date
	}

	if v := query.Get("endDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, errors.New(msgInvalidDate)
		}
		req.EndDate = &date
	}

	return req, nil
}
