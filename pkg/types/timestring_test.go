package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "full format", input: "09:30:00", want: "09:30:00"},
		{name: "short format normalized", input: "09:30", want: "09:30:00"},
		{name: "midnight", input: "00:00", want: "00:00:00"},
		{name: "end of day", input: "23:59:59", want: "23:59:59"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "not a time", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_IsBeforeIsAfter(t *testing.T) {
	earlier := TimeString("09:00:00")
	later := TimeString("10:00:00")

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.False(t, earlier.IsBefore(earlier))

	assert.True(t, later.IsAfter(earlier))
	assert.False(t, earlier.IsAfter(later))
	assert.False(t, later.IsAfter(later))

	// Некорректные значения ни раньше, ни позже
	assert.False(t, TimeString("bad").IsBefore(later))
	assert.False(t, later.IsAfter(TimeString("bad")))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:30:00")

	got, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15:00"), got)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_OnDate(t *testing.T) {
	ts := TimeString("14:30:00")
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got, err := ts.OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00:00"), ts)

	require.NoError(t, ts.Scan([]byte("11:15:00")))
	assert.Equal(t, TimeString("11:15:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 1, 12, 45, 30, 0, time.UTC)))
	assert.Equal(t, TimeString("12:45:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
