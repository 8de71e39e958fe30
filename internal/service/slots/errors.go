package slots

import "errors"

var (
	// ErrUserNotFound возвращается, когда актор не найден в user directory
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied возвращается, когда роль актора не позволяет создавать слоты
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSlotRange возвращается, когда время начала слота не раньше времени окончания
	ErrInvalidSlotRange = errors.New("slot start time must be before end time")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
