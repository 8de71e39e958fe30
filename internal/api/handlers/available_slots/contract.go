package available_slots

import (
	"context"

	"github.com/labims/LIMS-BookingService/internal/service/slots/models"
)

type SlotsService interface {
	AvailableSlots(ctx context.Context, req *models.AvailableSlotsRequest) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
