package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/labims/LIMS-BookingService/internal/domain"
	inventoryClient "github.com/labims/LIMS-BookingService/internal/integrations/inventoryservice"
)

// UseCase use case проверки доступности ресурса в произвольном окне времени
// Повторяет проверки валидатора создания: сначала состояние ресурса, затем
// пересечение окна с активными бронированиями - ответы обоих всегда согласованы
type UseCase struct {
	bookingRepo     BookingRepository
	inventoryClient InventoryServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	inventoryClient InventoryServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		inventoryClient: inventoryClient,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: resource=%s/%d, window=[%s, %s]",
		req.ResourceType, req.ResourceID,
		req.WindowStart.Format("2006-01-02 15:04:05"), req.WindowEnd.Format("2006-01-02 15:04:05"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование и состояние ресурса
	bookable, err := uc.resolveBookable(ctx, req)
	if err != nil {
		return nil, err
	}
	if !bookable {
		uc.logger.Info("CheckAvailability: resource %s/%d is not bookable", req.ResourceType, req.ResourceID)
		return &Response{Available: false, Reason: ReasonResourceUnavailable}, nil
	}

	// 3. Проверяем пересечение окна с активными бронированиями
	count, err := uc.bookingRepo.CountActiveInWindow(ctx, req.ResourceType, req.ResourceID, req.WindowStart, req.WindowEnd)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to count bookings in window: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings in window: %v", ErrInternal, err)
	}

	if count > 0 {
		uc.logger.Info("CheckAvailability: resource %s/%d has %d active bookings in window",
			req.ResourceType, req.ResourceID, count)
		return &Response{Available: false, Reason: ReasonSlotBooked}, nil
	}

	return &Response{Available: true}, nil
}

func validateRequest(req *Request) error {
	if !req.ResourceType.IsValid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, req.ResourceType)
	}
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.WindowStart.IsZero() || req.WindowEnd.IsZero() {
		return fmt.Errorf("%w: window bounds are required", ErrInvalidInput)
	}
	if !req.WindowStart.Before(req.WindowEnd) {
		return fmt.Errorf("%w: window start must be before window end", ErrInvalidInput)
	}
	return nil
}

// resolveBookable проверяет существование ресурса и его бронируемость
func (uc *UseCase) resolveBookable(ctx context.Context, req *Request) (bool, error) {
	switch req.ResourceType {
	case domain.ResourceEquipment:
		equipment, err := uc.inventoryClient.GetEquipment(ctx, req.ResourceID)
		if err != nil {
			if errors.Is(err, inventoryClient.ErrEquipmentNotFound) {
				uc.logger.Warn("CheckAvailability: equipment id=%d not found", req.ResourceID)
				return false, ErrResourceNotFound
			}
			uc.logger.Error("CheckAvailability: failed to get equipment id=%d: %v", req.ResourceID, err)
			return false, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
		}
		return domain.EquipmentStatus(equipment.Status).IsBookable(), nil

	case domain.ResourceWorkspace:
		workspace, err := uc.inventoryClient.GetWorkspace(ctx, req.ResourceID)
		if err != nil {
			if errors.Is(err, inventoryClient.ErrWorkspaceNotFound) {
				uc.logger.Warn("CheckAvailability: workspace id=%d not found", req.ResourceID)
				return false, ErrResourceNotFound
			}
			uc.logger.Error("CheckAvailability: failed to get workspace id=%d: %v", req.ResourceID, err)
			return false, fmt.Errorf("%w: failed to get workspace: %v", ErrInternal, err)
		}
		return workspace.IsActive, nil

	default:
		return false, fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, req.ResourceType)
	}
}
