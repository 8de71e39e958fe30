package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labims/LIMS-BookingService/internal/api/handlers"
	"github.com/labims/LIMS-BookingService/internal/api/middleware"
	"github.com/labims/LIMS-BookingService/internal/domain"
	getCalendar "github.com/labims/LIMS-BookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDates      = "параметры startDate и endDate обязательны"
	msgInvalidResourceID = "некорректный параметр resourceId"
	msgInvalidInput      = "некорректные параметры запроса"
	msgUserNotFound      = "пользователь не найден"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query параметры: startDate, endDate (обязательны);
// resourceType, resourceId, status, lab (опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUserNotFound)
		return
	}

	req, err := parseQuery(r, actorID)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid query: user_id=%d, error=%v", actorID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: user_id=%d, error=%v", actorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getCalendar.ErrUserNotFound):
			h.logger.Warn("GET /calendar - User not found: user_id=%d", actorID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /calendar - Failed to get calendar: user_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func parseQuery(r *http.Request, actorID int64) (*getCalendar.Request, error) {
	query := r.URL.Query()

	startStr := query.Get("startDate")
	endStr := query.Get("endDate")
	if startStr == "" || endStr == "" {
		return nil, errors.New(msgMissingDates)
	}

	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		return nil, errors.New(msgInvalidDate)
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		return nil, errors.New(msgInvalidDate)
	}

	req := &getCalendar.Request{
		ActorID:   actorID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if v := query.Get("resourceType"); v != "" {
		resourceType := domain.ResourceType(v)
		req.ResourceType = &resourceType
	}

	if v := query.Get("resourceId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.New(msgInvalidResourceID)
		}
		req.ResourceID = &id
	}

	if v := query.Get("status"); v != "" {
		status := domain.BookingStatus(v)
		req.Status = &status
	}

	if v := query.Get("lab"); v != "" {
		lab := domain.Lab(v)
		req.Lab = &lab
	}

	return req, nil
}
