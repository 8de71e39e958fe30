package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/labims/LIMS-BookingService/internal/domain"
	userClient "github.com/labims/LIMS-BookingService/internal/integrations/userservice"
)

// UseCase use case календаря: единое хронологическое представление бронирований
// обоих видов ресурсов за окно [start, end]
type UseCase struct {
	bookingRepo BookingRepository
	userClient  UserServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		userClient:  userClient,
		logger:      logger,
	}
}

// Execute выполняет use case календаря
// Правило видимости применяется единообразно для обоих видов ресурсов:
// ADMIN/LAB_MANAGER видят все, TECHNICIAN - бронирования ресурсов своей
// лаборатории, STUDENT - только собственные
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: actor=%d, window=[%s, %s]",
		req.ActorID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем актора для применения правила видимости
	actor, err := uc.userClient.GetUser(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("GetCalendar: actor id=%d not found", req.ActorID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("GetCalendar: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %v", ErrInternal, err)
	}

	// 3. Собираем фильтр: пользовательские фильтры плюс ограничение видимости
	filter := domain.BookingsFilter{
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Status:       req.Status,
		Lab:          req.Lab,
		StartDate:    &req.StartDate,
		EndDate:      &req.EndDate,
	}
	applyVisibility(&filter, actor)

	// 4. Читаем бронирования (репозиторий отдает их отсортированными по времени)
	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	events := make([]Event, len(bookings))
	for i, b := range bookings {
		events[i] = eventFromBooking(b)
	}

	uc.logger.Info("GetCalendar: returning %d events for actor=%d", len(events), req.ActorID)

	return &Response{Events: events}, nil
}

func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}
	if req.ResourceType != nil && !req.ResourceType.IsValid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, *req.ResourceType)
	}
	return nil
}

// applyVisibility сужает фильтр согласно роли актора
func applyVisibility(filter *domain.BookingsFilter, actor *userClient.User) {
	role := domain.Role(actor.Role)

	switch {
	case role.Can(domain.OpViewAllBookings):
		// Без ограничений
	case role.Can(domain.OpViewLabBookings):
		// Техник видит только ресурсы своей лаборатории
		lab := domain.Lab(actor.Lab)
		filter.Lab = &lab
	default:
		// Студент видит только собственные бронирования
		filter.UserID = &actor.ID
	}
}
