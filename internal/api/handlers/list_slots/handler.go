package list_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/labims/LIMS-BookingService/internal/api/handlers"
	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/internal/service/slots"
	"github.com/labims/LIMS-BookingService/internal/service/slots/models"
)

const (
	// период по умолчанию, если границы не заданы
	defaultRangeDays = 7

	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "конец периода раньше его начала"
)

type Handler struct {
	service      SlotsService
	logger       Logger
	timeProvider TimeProvider
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service:      service,
		logger:       logger,
		timeProvider: &RealTimeProvider{},
	}
}

// Handle GET /api/v1/slots
// Query параметры: startDate, endDate (опциональны, по умолчанию
// сегодня и сегодня + 7 дней)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.ListInRange(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /slots - Failed to list slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) parseQuery(r *http.Request) (*models.ListSlotsRequest, error) {
	query := r.URL.Query()

	// Календарное "сегодня" в зоне сервера, не UTC-усечение
	now := h.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startDate := today
	endDate := today.AddDate(0, 0, defaultRangeDays)

	if v := query.Get("startDate"); v != "" {
		parsed, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, errors.New(msgInvalidDate)
		}
		startDate = parsed
		// если задано только начало, окно отсчитывается от него
		endDate = parsed.AddDate(0, 0, defaultRangeDays)
	}

	if v := query.Get("endDate"); v != "" {
		parsed, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, errors.New(msgInvalidDate)
		}
		endDate = parsed
	}

	return &models.ListSlotsRequest{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
