package create_booking

import (
	"context"
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/internal/integrations/inventoryservice"
	"github.com/labims/LIMS-BookingService/internal/integrations/userservice"
	"github.com/labims/LIMS-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ExistsActiveForSlot(ctx context.Context, resourceType domain.ResourceType, resourceID, slotID int64) (bool, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByIdentity(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error)
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// InventoryServiceClient интерфейс клиента для InventoryService
type InventoryServiceClient interface {
	GetEquipment(ctx context.Context, equipmentID int64) (*inventoryservice.Equipment, error)
	GetWorkspace(ctx context.Context, workspaceID int64) (*inventoryservice.Workspace, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
