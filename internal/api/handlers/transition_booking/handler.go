package transition_booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/labims/LIMS-BookingService/internal/api/handlers"
	"github.com/labims/LIMS-BookingService/internal/api/middleware"
	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/internal/service/bookings"
	"github.com/labims/LIMS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgInvalidAction     = "некорректное действие над бронированием"
	msgBookingNotFound   = "бронирование не найдено"
	msgUserNotFound      = "пользователь не найден"
	msgAccessDenied      = "нет прав на это действие"
	msgInvalidTransition = "действие недопустимо для текущего статуса бронирования"
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

// Handle PATCH /api/v1/bookings/{bookingId}/{action}
// Действия: approve, reject, cancel, complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUserNotFound)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/{action} - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	action := domain.TransitionAction(vars["action"])
	if !action.IsValid() {
		h.logger.Warn("PATCH /bookings/{id}/{action} - Invalid action: %s", vars["action"])
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	req := &models.TransitionRequest{
		ActorID: actorID,
		Action:  action,
	}

	result, err := h.service.Transition(r.Context(), bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/%s - Booking not found: booking_id=%d", action, bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("PATCH /bookings/{id}/%s - User not found: user_id=%d", action, actorID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/%s - Access denied: booking_id=%d, user_id=%d",
				action, bookingID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidTransition):
			msg := msgInvalidTransition
			var transitionErr *bookings.InvalidTransitionError
			if errors.As(err, &transitionErr) {
				msg = fmt.Sprintf("%s (текущий статус: %s)", msgInvalidTransition, transitionErr.Current)
			}
			h.logger.Warn("PATCH /bookings/{id}/%s - Invalid transition: booking_id=%d, error=%v",
				action, bookingID, err)
			handlers.RespondBadRequest(w, msg)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/%s - Invalid input: booking_id=%d, error=%v",
				action, bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidAction)

		default:
			h.logger.Error("PATCH /bookings/{id}/%s - Failed to transition: booking_id=%d, error=%v",
				action, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/%s - Booking transitioned: booking_id=%d, user_id=%d, status=%s",
		action, bookingID, actorID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
