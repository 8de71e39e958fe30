package create_booking

import (
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
	"github.com/labims/LIMS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// Слот задается либо готовым SlotID, либо тройкой (Date, StartTime, EndTime) -
// во втором случае слот ищется по идентичности и при необходимости создается
// (создание доступно только ADMIN/LAB_MANAGER)
type Request struct {
	UserID       int64               // ID пользователя-заявителя
	ResourceType domain.ResourceType // EQUIPMENT или WORKSPACE
	ResourceID   int64               // ID ресурса

	SlotID    *int64           // ID существующего слота (опционально)
	Date      time.Time        // Дата слота (если SlotID не задан)
	StartTime types.TimeString // Время начала слота (если SlotID не задан)
	EndTime   types.TimeString // Время окончания слота (если SlotID не задан)

	Purpose           string  // Цель бронирования (обязательно)
	ProjectName       *string // Название проекта (опционально)
	Notes             *string // Заметки (опционально)
	ParticipantsCount *int    // Число участников (только для WORKSPACE)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	ResourceType domain.ResourceType
	ResourceID   int64
	UserID       int64
	SlotID       int64
	Status       string

	Purpose           string
	ProjectName       *string
	Notes             *string
	ParticipantsCount *int

	// Денормализованные данные
	ResourceName string
	ResourceLab  string
	UserName     string

	// Данные слота
	SlotDate      time.Time
	SlotStartTime types.TimeString
	SlotEndTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует domain модель в response
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:                b.ID,
		ResourceType:      b.ResourceType,
		ResourceID:        b.ResourceID,
		UserID:            b.UserID,
		SlotID:            b.SlotID,
		Status:            string(b.Status),
		Purpose:           b.Purpose,
		ProjectName:       b.ProjectName,
		Notes:             b.Notes,
		ParticipantsCount: b.ParticipantsCount,
		ResourceName:      b.ResourceName,
		ResourceLab:       string(b.ResourceLab),
		UserName:          b.UserName,
		SlotDate:          b.SlotDate,
		SlotStartTime:     b.SlotStartTime,
		SlotEndTime:       b.SlotEndTime,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// resourceInfo сводка по ресурсу из resource directory
// Унифицирует оборудование и рабочие места для валидатора
type resourceInfo struct {
	Name     string
	Lab      domain.Lab
	Bookable bool
	Capacity int // 0 для оборудования - вместимость не проверяется
}
