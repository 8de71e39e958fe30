package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrUserNotFound возвращается, когда актор не найден в user directory
	ErrUserNotFound = errors.New("get_calendar: user not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
