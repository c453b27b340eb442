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
		wantErr bool
	}{
		{name: "two digit hour", input: "09:00", wantErr: false},
		{name: "single digit hour", input: "9:00", wantErr: false},
		{name: "midnight", input: "0:00", wantErr: false},
		{name: "end of day", input: "23:59", wantErr: false},
		{name: "empty string", input: "", wantErr: true},
		{name: "no colon", input: "0900", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "single digit minute", input: "10:5", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	assert.Equal(t, 10, ts.Hour())
	assert.Equal(t, 30, ts.Minute())
	assert.Equal(t, 630, ts.MinutesOfDay())
}

func TestTimeString_Comparisons(t *testing.T) {
	open := TimeString("09:00")
	close := TimeString("21:00")

	assert.True(t, open.IsBefore(close))
	assert.False(t, close.IsBefore(open))
	assert.True(t, close.IsAfter(open))
	assert.False(t, open.IsBefore(open))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("22:30")

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "23:30", next.String())

	// Выход за пределы суток
	_, err = ts.AddMinutes(120)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	ts := TimeString("10:00")

	got := ts.OnDate(date)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), got)

	// Время суток берется из TimeString, дата и локация - из аргумента
	noon := time.Date(2026, 9, 1, 12, 45, 13, 0, time.UTC)
	assert.Equal(t, got, ts.OnDate(noon))
}
