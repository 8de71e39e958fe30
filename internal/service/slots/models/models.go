package models

import (
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
)

// Request модели

// FindOrCreateSlotRequest запрос на поиск или создание слота по тройке
// (дата, начало, конец)
type FindOrCreateSlotRequest struct {
	ActorID   int64  `json:"actorId"`
	Date      string `json:"date"`      // "2025-06-01"
	StartTime string `json:"startTime"` // "09:00" или "09:00:00"
	EndTime   string `json:"endTime"`
}

// ListSlotsRequest запрос на список слотов за период
type ListSlotsRequest struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// AvailableSlotsRequest запрос свободных слотов ресурса на дату
type AvailableSlotsRequest struct {
	ResourceType string    `json:"resourceType"`
	ResourceID   int64     `json:"resourceId"`
	Date         time.Time `json:"date"`
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FindOrCreateSlotResponse ответ на поиск или создание слота
// Created показывает, был ли слот создан этим запросом
type FindOrCreateSlotResponse struct {
	Slot    SlotResponse `json:"slot"`
	Created bool         `json:"created"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	result := make([]SlotResponse, len(slots))
	for i, s := range slots {
		result[i] = FromDomainSlot(s)
	}
	return &SlotListResponse{Slots: result}
}
