package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrResourceUnavailable возвращается, когда ресурс не в бронируемом состоянии
	ErrResourceUnavailable = errors.New("create_booking: resource is not available for booking")

	// ErrCapacityExceeded возвращается, когда число участников превышает вместимость рабочего места
	ErrCapacityExceeded = errors.New("create_booking: participants count exceeds workspace capacity")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotCreationForbidden возвращается, когда актор не вправе создавать новые слоты
	// Студенты и техники бронируют только в заранее созданные слоты
	ErrSlotCreationForbidden = errors.New("create_booking: not permitted to create new slots")

	// ErrInvalidSlotRange возвращается, когда время начала слота не раньше времени окончания
	ErrInvalidSlotRange = errors.New("create_booking: slot start time must be before end time")

	// ErrSlotInPast возвращается при попытке забронировать слот в прошлом
	ErrSlotInPast = errors.New("create_booking: cannot book a slot in the past")

	// ErrSlotAlreadyBooked возвращается, когда пара (ресурс, слот) уже занята активным бронированием
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked for this resource")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
