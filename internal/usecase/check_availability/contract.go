package check_availability

import (
	"context"
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/internal/integrations/inventoryservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountActiveInWindow(ctx context.Context, resourceType domain.ResourceType, resourceID int64, windowStart, windowEnd time.Time) (int, error)
}

// InventoryServiceClient интерфейс клиента для InventoryService
type InventoryServiceClient interface {
	GetEquipment(ctx context.Context, equipmentID int64) (*inventoryservice.Equipment, error)
	GetWorkspace(ctx context.Context, workspaceID int64) (*inventoryservice.Workspace, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
