package domain

import (
	"time"

	"github.com/labims/LIMS-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusApproved  BookingStatus = "APPROVED"
	StatusRejected  BookingStatus = "REJECTED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// Booking represents a resource booking in the system
// Одна таблица на оба вида ресурсов: ResourceType различает оборудование
// и рабочие места, ParticipantsCount имеет смысл только для рабочих мест
type Booking struct {
	ID           int64
	ResourceType ResourceType
	ResourceID   int64
	UserID       int64
	SlotID       int64
	Status       BookingStatus

	Purpose           string
	ProjectName       *string
	Notes             *string
	ParticipantsCount *int // только для WORKSPACE

	ApprovedBy *int64

	// Denormalized data for history and visibility filtering
	ResourceName string
	ResourceLab  Lab
	UserName     string

	// Данные слота, заполняются из JOIN со слотом при чтении
	SlotDate      time.Time
	SlotStartTime types.TimeString
	SlotEndTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its slot
// Активные бронирования (PENDING, APPROVED) блокируют слот для ресурса
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsTerminal returns true if the booking is in a terminal status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected ||
		b.Status == StatusCancelled ||
		b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsOwnedBy returns true if the booking was created by the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	ResourceType *ResourceType  // Фильтр по виду ресурса (опционально)
	ResourceID   *int64         // Фильтр по конкретному ресурсу (опционально)
	UserID       *int64         // Фильтр по владельцу (опционально)
	Status       *BookingStatus // Фильтр по статусу (опционально)
	Lab          *Lab           // Фильтр по лаборатории ресурса (опционально)
	StartDate    *time.Time     // Начало периода по дате слота (опционально)
	EndDate      *time.Time     // Конец периода по дате слота (опционально)
	OnlyActive   bool           // Только активные бронирования (PENDING, APPROVED)
}
