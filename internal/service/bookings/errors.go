package bookings

import (
	"errors"
	"fmt"

	"github.com/labims/LIMS-BookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUserNotFound возвращается, когда актор не найден в user directory
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied возвращается, когда у актора нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// Конкретный текущий статус несет InvalidTransitionError
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// InvalidTransitionError ошибка недопустимого перехода с текущим статусом,
// чтобы клиент мог синхронизировать свое представление
type InvalidTransitionError struct {
	Action  domain.TransitionAction
	Current domain.BookingStatus
}

// Error реализует error
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: cannot %s booking in status %s", e.Action, e.Current)
}

// Is поддерживает errors.Is(err, ErrInvalidTransition)
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
