package create_booking

import (
	"fmt"
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !req.ResourceType.IsValid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, req.ResourceType)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.Purpose == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}
	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose is too long", ErrInvalidInput)
	}

	if req.ProjectName != nil && len(*req.ProjectName) > domain.MaxProjectNameLength {
		return fmt.Errorf("%w: projectName is too long", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes is too long", ErrInvalidInput)
	}

	// Число участников имеет смысл только для рабочих мест
	if req.ParticipantsCount != nil {
		if req.ResourceType != domain.ResourceWorkspace {
			return fmt.Errorf("%w: participantsCount is only valid for workspace bookings", ErrInvalidInput)
		}
		if *req.ParticipantsCount < domain.MinParticipantsCount {
			return fmt.Errorf("%w: participantsCount must be at least %d", ErrInvalidInput, domain.MinParticipantsCount)
		}
	}

	// Слот задается либо по ID, либо тройкой (дата, начало, конец)
	if req.SlotID != nil {
		if *req.SlotID <= 0 {
			return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
		}
		return nil
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required when slotID is not set", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required when slotID is not set", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return ErrInvalidSlotRange
	}

	return nil
}

// validateResource проверяет, что ресурс находится в бронируемом состоянии
// и вместимость рабочего места не превышена
// Порядок проверок фиксирован: сначала состояние ресурса, затем вместимость
func validateResource(info *resourceInfo, req *Request) error {
	if !info.Bookable {
		return ErrResourceUnavailable
	}

	if req.ResourceType == domain.ResourceWorkspace && req.ParticipantsCount != nil {
		if *req.ParticipantsCount > info.Capacity {
			return fmt.Errorf("%w: %d participants requested, capacity is %d",
				ErrCapacityExceeded, *req.ParticipantsCount, info.Capacity)
		}
	}

	return nil
}

// validateSlotNotInPast проверяет, что слот не начинается в прошлом
func validateSlotNotInPast(s *domain.Slot, now time.Time) error {
	startsAt, err := s.StartsAt()
	if err != nil {
		return fmt.Errorf("%w: failed to resolve slot start: %v", ErrInternal, err)
	}
	if startsAt.Before(now) {
		return ErrSlotInPast
	}
	return nil
}
