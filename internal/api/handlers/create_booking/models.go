package create_booking

import (
	"time"

	"github.com/labims/LIMS-BookingService/internal/domain"
	createBooking "github.com/labims/LIMS-BookingService/internal/usecase/create_booking"
	"github.com/labims/LIMS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
// Слот задается либо slotId, либо тройкой (date, startTime, endTime)
type CreateBookingRequest struct {
	ResourceType string `json:"resourceType"` // EQUIPMENT или WORKSPACE
	ResourceID   int64  `json:"resourceId"`

	SlotID    *int64 `json:"slotId,omitempty"`
	Date      string `json:"date,omitempty"`      // "2025-06-01"
	StartTime string `json:"startTime,omitempty"` // "09:00"
	EndTime   string `json:"endTime,omitempty"`   // "10:00"

	Purpose           string  `json:"purpose"`
	ProjectName       *string `json:"projectName,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	ParticipantsCount *int    `json:"participantsCount,omitempty"`
}

// BookingResponse HTTP response model
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

	ResourceName string `json:"resourceName"`
	ResourceLab  string `json:"resourceLab"`
	UserName     string `json:"userName"`

	SlotDate      string `json:"slotDate"`
	SlotStartTime string `json:"slotStartTime"`
	SlotEndTime   string `json:"slotEndTime"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	req := &createBooking.Request{
		UserID:            userID,
		ResourceType:      domain.ResourceType(r.ResourceType),
		ResourceID:        r.ResourceID,
		SlotID:            r.SlotID,
		Purpose:           r.Purpose,
		ProjectName:       r.ProjectName,
		Notes:             r.Notes,
		ParticipantsCount: r.ParticipantsCount,
	}

	if r.SlotID == nil {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}

		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}

		endTime, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}

		req.Date = date
		req.StartTime = startTime
		req.EndTime = endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		ResourceType:      string(resp.ResourceType),
		ResourceID:        resp.ResourceID,
		UserID:            resp.UserID,
		SlotID:            resp.SlotID,
		Status:            resp.Status,
		Purpose:           resp.Purpose,
		ProjectName:       resp.ProjectName,
		Notes:             resp.Notes,
		ParticipantsCount: resp.ParticipantsCount,
		ResourceName:      resp.ResourceName,
		ResourceLab:       resp.ResourceLab,
		UserName:          resp.UserName,
		SlotDate:          resp.SlotDate.Format(domain.DateFormat),
		SlotStartTime:     resp.SlotStartTime.String(),
		SlotEndTime:       resp.SlotEndTime.String(),
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
