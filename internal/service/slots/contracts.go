package slots

import (
	"context"
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/internal/integrations/userservice"
	"github.com/labims/LIMS-BookingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	GetByIdentity(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error)
	ListInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Slot, error)
	ListOnDate(ctx context.Context, date time.Time) ([]*domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований для расчета занятости
type BookingRepository interface {
	ListActiveSlotIDs(ctx context.Context, resourceType domain.ResourceType, resourceID int64, date time.Time) ([]int64, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
