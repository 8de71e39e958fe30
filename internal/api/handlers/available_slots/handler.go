package available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/labims/LIMS-BookingService/internal/api/handlers"
	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/internal/service/slots"
	"github.com/labims/LIMS-BookingService/internal/service/slots/models"
)

const (
	msgInvalidResourceType = "некорректный вид ресурса, ожидается EQUIPMENT или WORKSPACE"
	msgInvalidResourceID   = "некорректный ID ресурса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate         = "параметр date обязателен"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceType}/{resourceId}/available-slots
// Query параметр: date (обязателен)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceType := domain.ResourceType(vars["resourceType"])
	if !resourceType.IsValid() {
		h.logger.Warn("GET /resources/.../available-slots - Invalid resource type: %s", vars["resourceType"])
		handlers.RespondBadRequest(w, msgInvalidResourceType)
		return
	}

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil || resourceID <= 0 {
		h.logger.Warn("GET /resources/.../available-slots - Invalid resource ID: %s", vars["resourceId"])
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /resources/.../available-slots - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.AvailableSlotsRequest{
		ResourceType: string(resourceType),
		ResourceID:   resourceID,
		Date:         date,
	}

	result, err := h.service.AvailableSlots(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /resources/.../available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /resources/.../available-slots - Failed to get available slots: %s %d, error=%v",
				resourceType, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
