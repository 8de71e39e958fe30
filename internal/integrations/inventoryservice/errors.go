package inventoryservice

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrWorkspaceNotFound возвращается, когда рабочее место не найдено
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("inventoryservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("inventoryservice client: invalid response")
)
