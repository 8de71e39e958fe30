package find_or_create_slot

import (
	"errors"
	"net/http"

	"github.com/labims/LIMS-BookingService/internal/api/handlers"
	"github.com/labims/LIMS-BookingService/internal/api/middleware"
	"github.com/labims/LIMS-BookingService/internal/service/slots"
	"github.com/labims/LIMS-BookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
	msgInvalidSlotRange   = "время начала слота должно быть раньше времени окончания"
	msgUserNotFound       = "пользователь не найден"
	msgAccessDenied       = "создание слотов доступно только администратору и менеджеру лаборатории"
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

// Handle POST /api/v1/slots
// Идемпотентный поиск или создание слота по тройке (дата, начало, конец)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUserNotFound)
		return
	}

	var req FindOrCreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.FindOrCreateSlotRequest{
		ActorID:   actorID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	result, err := h.service.FindOrCreate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidSlotRange):
			h.logger.Warn("POST /slots - Invalid slot range: user_id=%d", actorID)
			handlers.RespondBadRequest(w, msgInvalidSlotRange)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: user_id=%d, error=%v", actorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slots.ErrUserNotFound):
			h.logger.Warn("POST /slots - User not found: user_id=%d", actorID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("POST /slots - Access denied: user_id=%d", actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /slots - Failed to find or create slot: user_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	handlers.RespondJSON(w, status, result)
}
