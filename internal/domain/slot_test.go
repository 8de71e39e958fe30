package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labims/LIMS-BookingService/pkg/types"
)

func newTestSlot(t *testing.T, date, start, end string) *Slot {
	t.Helper()

	d, err := time.Parse(DateFormat, date)
	require.NoError(t, err)

	startTime, err := types.NewTimeStringFromString(start)
	require.NoError(t, err)

	endTime, err := types.NewTimeStringFromString(end)
	require.NoError(t, err)

	return &Slot{Date: d, StartTime: startTime, EndTime: endTime}
}

func TestSlot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{name: "valid slot", start: "09:00", end: "10:00"},
		{name: "start equals end", start: "09:00", end: "09:00", wantErr: ErrInvalidSlotRange},
		{name: "start after end", start: "10:00", end: "09:00", wantErr: ErrInvalidSlotRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSlot(t, "2025-06-01", tt.start, tt.end)
			err := s.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlot_OverlapsWindow(t *testing.T) {
	s := newTestSlot(t, "2025-06-01", "09:00", "10:00")

	day := func(hour, min int) time.Time {
		return time.Date(2025, 6, 1, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		windowStart time.Time
		windowEnd   time.Time
		want        bool
	}{
		{name: "window inside slot", windowStart: day(9, 15), windowEnd: day(9, 45), want: true},
		{name: "slot inside window", windowStart: day(8, 0), windowEnd: day(12, 0), want: true},
		{name: "partial overlap left", windowStart: day(8, 30), windowEnd: day(9, 30), want: true},
		{name: "partial overlap right", windowStart: day(9, 30), windowEnd: day(10, 30), want: true},
		{name: "window before slot", windowStart: day(7, 0), windowEnd: day(8, 0), want: false},
		{name: "window after slot", windowStart: day(11, 0), windowEnd: day(12, 0), want: false},
		// Смежные границы пересечением не считаются
		{name: "window ends at slot start", windowStart: day(8, 0), windowEnd: day(9, 0), want: false},
		{name: "window starts at slot end", windowStart: day(10, 0), windowEnd: day(11, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.OverlapsWindow(tt.windowStart, tt.windowEnd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorForStatus(t *testing.T) {
	assert.Equal(t, "#FFC107", ColorForStatus(StatusPending))
	assert.Equal(t, "#4CAF50", ColorForStatus(StatusApproved))
	assert.Equal(t, "#F44336", ColorForStatus(StatusRejected))
	assert.Equal(t, "#9E9E9E", ColorForStatus(StatusCancelled))
	assert.Equal(t, "#2196F3", ColorForStatus(StatusCompleted))

	// Неизвестный статус получает цвет по умолчанию
	assert.Equal(t, DefaultStatusColor, ColorForStatus(BookingStatus("ARCHIVED")))
}

func TestEquipmentStatus_IsBookable(t *testing.T) {
	assert.True(t, EquipmentAvailable.IsBookable())
	assert.True(t, EquipmentInUse.IsBookable())
	assert.False(t, EquipmentMaintenance.IsBookable())
	assert.False(t, EquipmentShared.IsBookable())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusApproved}).IsActive())
	assert.False(t, (&Booking{Status: StatusRejected}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
}
