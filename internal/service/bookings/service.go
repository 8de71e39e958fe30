package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/internal/infra/storage/booking"
	"github.com/labims/LIMS-BookingService/internal/integrations/userservice"
	"github.com/labims/LIMS-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение с учетом видимости
// и переводы статусов
type Service struct {
	bookingRepo BookingRepository
	userClient  UserServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый сервис бронирований
func NewService(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userClient:  userClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID возвращает бронирование по ID с проверкой видимости для актора
func (s *Service) GetByID(ctx context.Context, bookingID, actorID int64) (*models.BookingResponse, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("bookings.GetByID - failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get booking: %v", ErrInternal, err)
	}

	if !canViewBooking(actor, b) {
		s.logger.Warn("bookings.GetByID - access denied: user %d, booking %d", actorID, bookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(b), nil
}

// List возвращает список бронирований, суженный видимостью актора:
// администратор и менеджер видят все, техник - свою лабораторию,
// студент - только свои
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	actor, err := s.resolveActor(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	applyVisibility(&filter, actor)

	list, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("bookings.List - failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: List - failed to list bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(list), nil
}

// Transition переводит бронирование в новый статус по действию.
// Проверка прав и предусловия выполняются до изменения строки,
// под блокировкой строки внутри serializable транзакции
func (s *Service) Transition(ctx context.Context, bookingID int64, req *models.TransitionRequest) (*models.BookingResponse, error) {
	if !req.Action.IsValid() {
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	actor, err := s.resolveActor(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Transition - failed to get booking: %v", ErrInternal, err)
		}

		if !canPerformAction(actor, b, req.Action) {
			return ErrAccessDenied
		}

		if !req.Action.CanTransitionFrom(b.Status) {
			return &InvalidTransitionError{Action: req.Action, Current: b.Status}
		}

		var approvedBy *int64
		if req.Action.RecordsApprover() {
			approvedBy = &actor.ID
		}

		target := req.Action.TargetStatus()
		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, target, approvedBy); err != nil {
			return fmt.Errorf("%w: Transition - failed to update status: %v", ErrInternal, err)
		}

		b.Status = target
		if approvedBy != nil {
			b.ApprovedBy = approvedBy
		}
		updated = b

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		s.logger.Error("bookings.Transition - booking %d, action %s: %v", bookingID, req.Action, err)
		return nil, err
	}

	s.logger.Info("bookings.Transition - booking %d: %s by user %d, new status %s",
		bookingID, req.Action, req.ActorID, updated.Status)

	return models.FromDomainBooking(updated), nil
}

// resolveActor получает актора из UserService
func (s *Service) resolveActor(ctx context.Context, actorID int64) (*userservice.User, error) {
	actor, err := s.userClient.GetUser(ctx, actorID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("bookings.resolveActor - failed to get user %d: %v", actorID, err)
		return nil, fmt.Errorf("%w: resolveActor - failed to get user: %v", ErrInternal, err)
	}
	return actor, nil
}

// canViewBooking проверяет видимость бронирования для актора
func canViewBooking(actor *userservice.User, b *domain.Booking) bool {
	role := domain.Role(actor.Role)
	if role.Can(domain.OpViewAllBookings) {
		return true
	}
	if role.Can(domain.OpViewLabBookings) && b.ResourceLab == domain.Lab(actor.Lab) {
		return true
	}
	return b.IsOwnedBy(actor.ID)
}

// canPerformAction проверяет право актора на действие: либо роль
// разрешает операцию, либо действие разрешено владельцу
func canPerformAction(actor *userservice.User, b *domain.Booking, action domain.TransitionAction) bool {
	if domain.Role(actor.Role).Can(action.RequiredOperation()) {
		return true
	}
	return action.AllowsOwner() && b.IsOwnedBy(actor.ID)
}

// applyVisibility сужает фильтр до видимых актору бронирований
func applyVisibility(filter *domain.BookingsFilter, actor *userservice.User) {
	role := domain.Role(actor.Role)
	switch {
	case role.Can(domain.OpViewAllBookings):
		// видят все без ограничений
	case role.Can(domain.OpViewLabBookings):
		lab := domain.Lab(actor.Lab)
		filter.Lab = &lab
	default:
		userID := actor.ID
		filter.UserID = &userID
	}
}
