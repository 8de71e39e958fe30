package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04:05"   // HH:MM:SS
)

// Business validation constants
const (
	MaxPurposeLength     = 1000
	MaxProjectNameLength = 200
	MaxNotesLength       = 1000
	MinParticipantsCount = 1
)

// ActiveStatuses статусы бронирований, удерживающих слот
// Используются при проверке конфликтов и в расчете доступности
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// TerminalStatuses статусы без исходящих переходов
var TerminalStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
}

// DefaultStatusColor цвет для неизвестного статуса в календаре
const DefaultStatusColor = "#9C27B0" // purple

// statusColors таблица цветов статусов для отображения в календаре
var statusColors = map[BookingStatus]string{
	StatusPending:   "#FFC107", // amber
	StatusApproved:  "#4CAF50", // green
	StatusRejected:  "#F44336", // red
	StatusCancelled: "#9E9E9E", // gray
	StatusCompleted: "#2196F3", // blue
}

// ColorForStatus возвращает цвет отображения статуса в календаре
func ColorForStatus(status BookingStatus) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return DefaultStatusColor
}
