package find_or_create_slot

import (
	"context"

	"github.com/labims/LIMS-BookingService/internal/service/slots/models"
)

type SlotsService interface {
	FindOrCreate(ctx context.Context, req *models.FindOrCreateSlotRequest) (*models.FindOrCreateSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
