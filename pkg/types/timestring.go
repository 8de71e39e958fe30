package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	// timeLayout формат хранения времени (HH:MM:SS)
	timeLayout = "15:04:05"
	// timeLayoutShort допустимый входной формат без секунд (HH:MM)
	timeLayoutShort = "15:04"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString время суток в строковом представлении "HH:MM:SS"
// Используется для времени начала/окончания слотов, чтобы не тащить
// полноценный time.Time с датой и таймзоной туда, где нужно только время
type TimeString string

// NewTimeString создает TimeString из time.Time (берет только время суток)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM:SS" или "HH:MM" в TimeString
// Значение нормализуется к формату "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return TimeString(t.Format(timeLayout)), nil
	}
	if t, err := time.Parse(timeLayoutShort, s); err == nil {
		return TimeString(t.Format(timeLayout)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String возвращает строковое представление "HH:MM:SS"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero проверяет, что значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение является корректным временем суток
func (ts TimeString) Validate() error {
	_, err := ts.toTime()
	return err
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	t1, err1 := ts.toTime()
	t2, err2 := other.toTime()
	if err1 != nil || err2 != nil {
		return false
	}
	return t1.Before(t2)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	t1, err1 := ts.toTime()
	t2, err2 := other.toTime()
	if err1 != nil || err2 != nil {
		return false
	}
	return t1.After(t2)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.toTime()
	if err != nil {
		return "", err
	}
	return TimeString(t.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// OnDate совмещает время суток с датой в единый time.Time
func (ts TimeString) OnDate(date time.Time) (time.Time, error) {
	t, err := ts.toTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		date.Location(),
	), nil
}

// Scan реализует sql.Scanner для чтения из колонок типа TIME
func (ts *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, value)
	}
}

// Value реализует driver.Valuer для записи в колонки типа TIME
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

func (ts TimeString) toTime() (time.Time, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t, nil
}
