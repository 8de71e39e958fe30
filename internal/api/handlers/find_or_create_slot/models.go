package find_or_create_slot

// FindOrCreateSlotRequest HTTP request model
type FindOrCreateSlotRequest struct {
	Date      string `json:"date"`      // "2025-06-01"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
}
