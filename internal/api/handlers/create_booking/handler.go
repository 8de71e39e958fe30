package create_booking

import (
	"errors"
	"net/http"

	"github.com/labims/LIMS-BookingService/internal/api/handlers"
	"github.com/labims/LIMS-BookingService/internal/api/middleware"
	createBooking "github.com/labims/LIMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput          = "некорректные данные запроса"
	msgUserNotFound          = "пользователь не найден"
	msgResourceNotFound      = "ресурс не найден"
	msgResourceUnavailable   = "ресурс недоступен для бронирования"
	msgCapacityExceeded      = "число участников превышает вместимость рабочего места"
	msgSlotNotFound          = "слот не найден"
	msgSlotCreationForbidden = "создание новых слотов доступно только администратору и менеджеру лаборатории"
	msgInvalidSlotRange      = "время начала слота должно быть раньше времени окончания"
	msgSlotInPast            = "нельзя забронировать слот в прошлом"
	msgSlotAlreadyBooked     = "слот уже занят для этого ресурса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidInput)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidSlotRange):
			h.logger.Warn("POST /bookings - Invalid slot range: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidSlotRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: %s %d", req.ResourceType, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrResourceUnavailable):
			h.logger.Warn("POST /bookings - Resource unavailable: %s %d", req.ResourceType, req.ResourceID)
			handlers.RespondBadRequest(w, msgResourceUnavailable)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: workspace %d, user_id=%d", req.ResourceID, userID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrSlotCreationForbidden):
			h.logger.Warn("POST /bookings - Slot creation forbidden: user_id=%d", userID)
			handlers.RespondForbidden(w, msgSlotCreationForbidden)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: %s %d, user_id=%d",
				req.ResourceType, req.ResourceID, userID)
			handlers.RespondBadRequest(w, msgSlotAlreadyBooked)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, %s %d",
		result.ID, userID, req.ResourceType, req.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
