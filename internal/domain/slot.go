package domain

import (
	"errors"
	"time"

	"github.com/labims/LIMS-BookingService/pkg/types"
)

var (
	// ErrInvalidSlotRange возвращается, когда время начала слота не раньше времени окончания
	ErrInvalidSlotRange = errors.New("slot start time must be before end time")
)

// Slot дискретный бронируемый интервал времени
// Идентичность слота - тройка (дата, начало, конец); слоты никогда не изменяются
type Slot struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
}

// Validate проверяет инвариант слота: начало строго раньше конца
func (s *Slot) Validate() error {
	if err := s.StartTime.Validate(); err != nil {
		return err
	}
	if err := s.EndTime.Validate(); err != nil {
		return err
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return ErrInvalidSlotRange
	}
	return nil
}

// StartsAt возвращает момент начала слота как time.Time
func (s *Slot) StartsAt() (time.Time, error) {
	return s.StartTime.OnDate(s.Date)
}

// EndsAt возвращает момент окончания слота как time.Time
func (s *Slot) EndsAt() (time.Time, error) {
	return s.EndTime.OnDate(s.Date)
}

// OverlapsWindow проверяет пересечение слота с окном [windowStart, windowEnd)
// Граничные случаи пересечением не считаются: слот, заканчивающийся ровно
// в начале окна (или начинающийся ровно в его конце), окно не задевает
func (s *Slot) OverlapsWindow(windowStart, windowEnd time.Time) (bool, error) {
	start, err := s.StartsAt()
	if err != nil {
		return false, err
	}
	end, err := s.EndsAt()
	if err != nil {
		return false, err
	}
	return start.Before(windowEnd) && end.After(windowStart), nil
}
