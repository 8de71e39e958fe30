package inventoryservice

// Equipment модель оборудования из InventoryService
type Equipment struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"` // AVAILABLE, IN_USE, MAINTENANCE, SHARED
	Lab          string `json:"lab"`
	Location     string `json:"location"`
}

// Workspace модель рабочего места из InventoryService
type Workspace struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Lab      string `json:"lab"`
	Location string `json:"location"`
	IsActive bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от InventoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
