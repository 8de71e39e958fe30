package check_availability

import (
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
)

// Причины недоступности ресурса в окне
const (
	ReasonResourceUnavailable = "resource is not available for booking"
	ReasonSlotBooked          = "resource has an active booking in the requested window"
)

// Request модель запроса проверки доступности
type Request struct {
	ResourceType domain.ResourceType
	ResourceID   int64
	WindowStart  time.Time
	WindowEnd    time.Time
}

// Response модель ответа проверки доступности
// Reason заполняется только при Available = false
type Response struct {
	Available bool
	Reason    string
}
