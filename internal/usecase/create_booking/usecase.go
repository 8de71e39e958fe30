package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/labims/LIMS-BookingService/internal/domain"
	bookingRepo "github.com/labims/LIMS-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/labims/LIMS-BookingService/internal/infra/storage/slot"
	inventoryClient "github.com/labims/LIMS-BookingService/internal/integrations/inventoryservice"
	userClient "github.com/labims/LIMS-BookingService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	slotRepo        SlotRepository
	userClient      UserServiceClient
	inventoryClient InventoryServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	userClient UserServiceClient,
	inventoryClient InventoryServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		slotRepo:        slotRepo,
		userClient:      userClient,
		inventoryClient: inventoryClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости слота и вставка выполняются в сериализуемой транзакции,
// частичный уникальный индекс закрывает гонку check-then-insert
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, resource=%s/%d", req.UserID, req.ResourceType, req.ResourceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем заявителя из user directory
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Получаем ресурс из resource directory
	resource, err := uc.resolveResource(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Проверяем состояние ресурса и вместимость (первая ошибка выигрывает)
	if err := validateResource(resource, req); err != nil {
		uc.logger.Warn("CreateBooking: resource validation failed for %s/%d: %v",
			req.ResourceType, req.ResourceID, err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Разрешаем слот (поиск по ID или find-or-create по тройке)
		slot, err := uc.resolveSlot(txCtx, req, domain.Role(user.Role))
		if err != nil {
			return err
		}

		// 6.2. Проверяем, что слот не в прошлом
		if err := validateSlotNotInPast(slot, now); err != nil {
			uc.logger.Warn("CreateBooking: slot id=%d starts in the past", slot.ID)
			return err
		}

		// 6.3. Проверяем занятость пары (ресурс, слот) активным бронированием
		taken, err := uc.bookingRepo.ExistsActiveForSlot(txCtx, req.ResourceType, req.ResourceID, slot.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot occupancy: %v", err)
			return fmt.Errorf("%w: failed to check slot occupancy: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot id=%d already booked for %s/%d",
				slot.ID, req.ResourceType, req.ResourceID)
			return ErrSlotAlreadyBooked
		}

		// 6.4. Создаем бронирование в статусе PENDING с денормализацией данных
		booking := &domain.Booking{
			ResourceType:      req.ResourceType,
			ResourceID:        req.ResourceID,
			UserID:            req.UserID,
			SlotID:            slot.ID,
			Status:            domain.StatusPending,
			Purpose:           req.Purpose,
			ProjectName:       req.ProjectName,
			Notes:             req.Notes,
			ParticipantsCount: req.ParticipantsCount,
			// Денормализация данных ресурса и заявителя
			ResourceName: resource.Name,
			ResourceLab:  resource.Lab,
			UserName:     user.DisplayName(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Гонка, проигранная на уникальном индексе, для клиента неотличима
			// от обычной занятости слота
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: lost insert race for slot id=%d, %s/%d",
					slot.ID, req.ResourceType, req.ResourceID)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		created.SlotDate = slot.Date
		created.SlotStartTime = slot.StartTime
		created.SlotEndTime = slot.EndTime

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d in status=%s", result.ID, result.Status)

	return fromDomain(result), nil
}

// resolveResource получает ресурс из InventoryService и приводит оба вида
// к единой сводке для валидатора
func (uc *UseCase) resolveResource(ctx context.Context, req *Request) (*resourceInfo, error) {
	switch req.ResourceType {
	case domain.ResourceEquipment:
		equipment, err := uc.inventoryClient.GetEquipment(ctx, req.ResourceID)
		if err != nil {
			if errors.Is(err, inventoryClient.ErrEquipmentNotFound) {
				uc.logger.Warn("CreateBooking: equipment id=%d not found", req.ResourceID)
				return nil, ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get equipment id=%d: %v", req.ResourceID, err)
			return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
		}
		return &resourceInfo{
			Name:     equipment.Name,
			Lab:      domain.Lab(equipment.Lab),
			Bookable: domain.EquipmentStatus(equipment.Status).IsBookable(),
		}, nil

	case domain.ResourceWorkspace:
		workspace, err := uc.inventoryClient.GetWorkspace(ctx, req.ResourceID)
		if err != nil {
			if errors.Is(err, inventoryClient.ErrWorkspaceNotFound) {
				uc.logger.Warn("CreateBooking: workspace id=%d not found", req.ResourceID)
				return nil, ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get workspace id=%d: %v", req.ResourceID, err)
			return nil, fmt.Errorf("%w: failed to get workspace: %v", ErrInternal, err)
		}
		return &resourceInfo{
			Name:     workspace.Name,
			Lab:      domain.Lab(workspace.Lab),
			Bookable: workspace.IsActive,
			Capacity: workspace.Capacity,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, req.ResourceType)
	}
}

// resolveSlot находит слот по ID либо по тройке (дата, начало, конец)
// Отсутствующий слот создается только актором с правом create_slot:
// студенты бронируют в заранее созданные слоты
func (uc *UseCase) resolveSlot(ctx context.Context, req *Request, role domain.Role) (*domain.Slot, error) {
	if req.SlotID != nil {
		s, err := uc.slotRepo.GetByID(ctx, *req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", *req.SlotID)
				return nil, ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", *req.SlotID, err)
			return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		return s, nil
	}

	s, err := uc.slotRepo.GetByIdentity(ctx, req.Date, req.StartTime, req.EndTime)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, slotRepo.ErrSlotNotFound) {
		uc.logger.Error("CreateBooking: failed to look up slot: %v", err)
		return nil, fmt.Errorf("%w: failed to look up slot: %v", ErrInternal, err)
	}

	if !role.Can(domain.OpCreateSlot) {
		uc.logger.Warn("CreateBooking: role=%s is not permitted to create slots", role)
		return nil, ErrSlotCreationForbidden
	}

	created, err := uc.slotRepo.Create(ctx, &domain.Slot{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		// Конкурентный запрос успел создать ту же тройку - перечитываем
		if errors.Is(err, slotRepo.ErrSlotExists) {
			return uc.slotRepo.GetByIdentity(ctx, req.Date, req.StartTime, req.EndTime)
		}
		uc.logger.Error("CreateBooking: failed to create slot: %v", err)
		return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created slot id=%d (%s %s-%s)",
		created.ID, created.Date.Format(domain.DateFormat), created.StartTime, created.EndTime)

	return created, nil
}
