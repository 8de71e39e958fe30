package get_calendar

import (
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/pkg/types"
)

// Request модель запроса календаря
// Окно [StartDate, EndDate] задается датами, обе границы включительно
type Request struct {
	ActorID   int64     // Пользователь, запрашивающий календарь
	StartDate time.Time // Начало окна
	EndDate   time.Time // Конец окна

	// Фильтры (все опциональны)
	ResourceType *domain.ResourceType
	ResourceID   *int64
	Status       *domain.BookingStatus
	Lab          *domain.Lab
}

// Event событие календаря - бронирование в хронологически адресуемом виде
// Color задается фиксированной таблицей статус -> цвет
type Event struct {
	BookingID    int64
	ResourceType domain.ResourceType
	ResourceID   int64
	ResourceName string
	ResourceLab  domain.Lab
	UserID       int64
	UserName     string
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       domain.BookingStatus
	Color        string
}

// Response модель ответа с событиями календаря
type Response struct {
	Events []Event
}

// eventFromBooking конвертирует бронирование в событие календаря
func eventFromBooking(b *domain.Booking) Event {
	return Event{
		BookingID:    b.ID,
		ResourceType: b.ResourceType,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		ResourceLab:  b.ResourceLab,
		UserID:       b.UserID,
		UserName:     b.UserName,
		Date:         b.SlotDate,
		StartTime:    b.SlotStartTime,
		EndTime:      b.SlotEndTime,
		Status:       b.Status,
		Color:        domain.ColorForStatus(b.Status),
	}
}
