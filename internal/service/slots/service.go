package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/internal/infra/storage/slot"
	"github.com/labims/LIMS-BookingService/internal/integrations/userservice"
	"github.com/labims/LIMS-BookingService/internal/service/slots/models"
	"github.com/labims/LIMS-BookingService/pkg/types"
)

// Service сервис для работы со слотами: поиск или создание по тройке,
// списки за период и свободные слоты ресурса на дату
type Service struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	userClient  UserServiceClient
	logger      Logger
}

// NewService создает новый сервис слотов
func NewService(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		userClient:  userClient,
		logger:      logger,
	}
}

// FindOrCreate находит слот по тройке (дата, начало, конец) либо создает его.
// Создание доступно только ролям с правом create_slot; поиск существующего
// слота прав не требует. Гонку на создание разрешает уникальный индекс:
// при конфликте слот, созданный конкурентным запросом, перечитывается
func (s *Service) FindOrCreate(ctx context.Context, req *models.FindOrCreateSlotRequest) (*models.FindOrCreateSlotResponse, error) {
	date, start, end, err := parseSlotIdentity(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	existing, err := s.slotRepo.GetByIdentity(ctx, date, start, end)
	if err == nil {
		return &models.FindOrCreateSlotResponse{Slot: models.FromDomainSlot(existing)}, nil
	}
	if !errors.Is(err, slot.ErrSlotNotFound) {
		s.logger.Error("slots.FindOrCreate - failed to get slot: %v", err)
		return nil, fmt.Errorf("%w: FindOrCreate - failed to get slot: %v", ErrInternal, err)
	}

	actor, err := s.userClient.GetUser(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("slots.FindOrCreate - failed to get user %d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: FindOrCreate - failed to get user: %v", ErrInternal, err)
	}

	if !domain.Role(actor.Role).Can(domain.OpCreateSlot) {
		s.logger.Warn("slots.FindOrCreate - slot creation denied: user %d, role %s", actor.ID, actor.Role)
		return nil, ErrAccessDenied
	}

	newSlot := &domain.Slot{Date: date, StartTime: start, EndTime: end}
	created, err := s.slotRepo.Create(ctx, newSlot)
	if err != nil {
		if errors.Is(err, slot.ErrSlotExists) {
			existing, err := s.slotRepo.GetByIdentity(ctx, date, start, end)
			if err != nil {
				return nil, fmt.Errorf("%w: FindOrCreate - failed to refetch slot: %v", ErrInternal, err)
			}
			return &models.FindOrCreateSlotResponse{Slot: models.FromDomainSlot(existing)}, nil
		}
		s.logger.Error("slots.FindOrCreate - failed to create slot: %v", err)
		return nil, fmt.Errorf("%w: FindOrCreate - failed to create slot: %v", ErrInternal, err)
	}

	s.logger.Info("slots.FindOrCreate - slot %d created: %s %s-%s by user %d",
		created.ID, req.Date, start, end, req.ActorID)

	return &models.FindOrCreateSlotResponse{
		Slot:    models.FromDomainSlot(created),
		Created: true,
	}, nil
}

// ListInRange возвращает слоты за период [startDate, endDate]
func (s *Service) ListInRange(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	list, err := s.slotRepo.ListInRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("slots.ListInRange - failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: ListInRange - failed to list slots: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(list), nil
}

// AvailableSlots возвращает слоты на дату, свободные для указанного ресурса:
// из всех слотов на дату исключаются занятые активными бронированиями
func (s *Service) AvailableSlots(ctx context.Context, req *models.AvailableSlotsRequest) (*models.SlotListResponse, error) {
	resourceType := domain.ResourceType(req.ResourceType)
	if !resourceType.IsValid() {
		return nil, fmt.Errorf("%w: invalid resource type %q", ErrInvalidInput, req.ResourceType)
	}
	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resource id must be positive", ErrInvalidInput)
	}

	allSlots, err := s.slotRepo.ListOnDate(ctx, req.Date)
	if err != nil {
		s.logger.Error("slots.AvailableSlots - failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: AvailableSlots - failed to list slots: %v", ErrInternal, err)
	}

	takenIDs, err := s.bookingRepo.ListActiveSlotIDs(ctx, resourceType, req.ResourceID, req.Date)
	if err != nil {
		s.logger.Error("slots.AvailableSlots - failed to list taken slots: %v", err)
		return nil, fmt.Errorf("%w: AvailableSlots - failed to list taken slots: %v", ErrInternal, err)
	}

	taken := make(map[int64]struct{}, len(takenIDs))
	for _, id := range takenIDs {
		taken[id] = struct{}{}
	}

	free := make([]*domain.Slot, 0, len(allSlots))
	for _, sl := range allSlots {
		if _, ok := taken[sl.ID]; !ok {
			free = append(free, sl)
		}
	}

	return models.FromDomainSlotList(free), nil
}

// parseSlotIdentity разбирает и валидирует тройку (дата, начало, конец)
func parseSlotIdentity(dateStr, startStr, endStr string) (time.Time, types.TimeString, types.TimeString, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("%w: invalid start time format", ErrInvalidInput)
	}

	end, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("%w: invalid end time format", ErrInvalidInput)
	}

	if !start.IsBefore(end) {
		return time.Time{}, "", "", ErrInvalidSlotRange
	}

	return date, start, end, nil
}
