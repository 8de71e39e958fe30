package models

import (
	"errors"
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// TransitionRequest запрос на перевод бронирования в новый статус
type TransitionRequest struct {
	ActorID int64                   `json:"actorId"`
	Action  domain.TransitionAction `json:"action"`
}

// ListBookingsRequest запрос на получение списка бронирований
// Видимость сужается сервисом по роли актора
type ListBookingsRequest struct {
	ActorID      int64      `json:"actorId"`
	ResourceType *string    `json:"resourceType,omitempty"`
	ResourceID   *int64     `json:"resourceId,omitempty"`
	Status       *string    `json:"status,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ResourceID: r.ResourceID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}

	if r.ResourceType != nil {
		rt := domain.ResourceType(*r.ResourceType)
		if !rt.IsValid() {
			return filter, errors.New("invalid resource type")
		}
		filter.ResourceType = &rt
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	ResourceType string `json:"resourceType"`
	ResourceID   int64  `json:"resourceId"`
	UserID       int64  `json:"userId"`
	SlotID       int64  `json:"slotId"`
	Status       string `json:"status"`

	Purpose           string  `json:"purpose"`
	ProjectName       *string `json:"projectName,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	ParticipantsCount *int    `json:"participantsCount,omitempty"`
	ApprovedBy        *int64  `json:"approvedBy,omitempty"`

	// Денормализованные данные
	ResourceName string `json:"resourceName"`
	ResourceLab  string `json:"resourceLab"`
	UserName     string `json:"userName"`

	// Данные слота
	SlotDate      string `json:"slotDate"`      // "2025-06-01"
	SlotStartTime string `json:"slotStartTime"` // "09:00:00"
	SlotEndTime   string `json:"slotEndTime"`   // "10:00:00"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                b.ID,
		ResourceType:      string(b.ResourceType),
		ResourceID:        b.ResourceID,
		UserID:            b.UserID,
		SlotID:            b.SlotID,
		Status:            string(b.Status),
		Purpose:           b.Purpose,
		ProjectName:       b.ProjectName,
		Notes:             b.Notes,
		ParticipantsCount: b.ParticipantsCount,
		ApprovedBy:        b.ApprovedBy,
		ResourceName:      b.ResourceName,
		ResourceLab:       string(b.ResourceLab),
		UserName:          b.UserName,
		SlotDate:          b.SlotDate.Format(domain.DateFormat),
		SlotStartTime:     b.SlotStartTime.String(),
		SlotEndTime:       b.SlotEndTime.String(),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected,
		domain.StatusCancelled, domain.StatusCompleted:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
