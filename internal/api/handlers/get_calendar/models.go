package get_calendar

import (
	"github.com/labims/LIMS-BookingService/internal/domain"
	getCalendar "github.com/labims/LIMS-BookingService/internal/usecase/get_calendar"
)

// EventResponse событие календаря в HTTP ответе
type EventResponse struct {
	BookingID    int64  `json:"bookingId"`
	ResourceType string `json:"resourceType"`
	ResourceID   int64  `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	ResourceLab  string `json:"resourceLab"`
	UserID       int64  `json:"userId"`
	UserName     string `json:"userName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
	Color        string `json:"color"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Events []EventResponse `json:"events"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	events := make([]EventResponse, len(resp.Events))
	for i, e := range resp.Events {
		events[i] = EventResponse{
			BookingID:    e.BookingID,
			ResourceType: string(e.ResourceType),
			ResourceID:   e.ResourceID,
			ResourceName: e.ResourceName,
			ResourceLab:  string(e.ResourceLab),
			UserID:       e.UserID,
			UserName:     e.UserName,
			Date:         e.Date.Format(domain.DateFormat),
			StartTime:    e.StartTime.String(),
			EndTime:      e.EndTime.String(),
			Status:       string(e.Status),
			Color:        e.Color,
		}
	}
	return &CalendarResponse{Events: events}
}
