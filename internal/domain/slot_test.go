package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RCM-BookingService/pkg/ptr"
)

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateSlots_TilesOperatingWindow(t *testing.T) {
	slots := GenerateSlots(ptr.Ptr("09:00-12:00"), 60, testDate)

	require.Len(t, slots, 3)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), slots[0].StartsAt)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), slots[0].EndsAt)
	assert.Equal(t, time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC), slots[2].StartsAt)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), slots[2].EndsAt)

	// Слоты покрывают окно без зазоров и перекрытий
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndsAt, slots[i].StartsAt)
	}
}

func TestGenerateSlots_DropsPartialLastSlot(t *testing.T) {
	// 09:00-12:30 при шаге 60 минут: слот 12:00-13:00 вышел бы за закрытие
	slots := GenerateSlots(ptr.Ptr("09:00-12:30"), 60, testDate)

	require.Len(t, slots, 3)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), slots[2].EndsAt)
}

func TestGenerateSlots_SlotCountIsFloorOfWindow(t *testing.T) {
	tests := []struct {
		name     string
		hours    string
		slotMins int
		want     int
	}{
		{name: "exact division", hours: "09:00-21:00", slotMins: 60, want: 12},
		{name: "window shorter than slot", hours: "09:00-09:30", slotMins: 60, want: 0},
		{name: "ninety minute slots", hours: "10:00-14:00", slotMins: 90, want: 2},
		{name: "thirty minute slots", hours: "08:15-10:00", slotMins: 30, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(ptr.Ptr(tt.hours), tt.slotMins, testDate)
			assert.Len(t, slots, tt.want)
		})
	}
}

func TestGenerateSlots_MalformedInputYieldsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		hours *string
	}{
		{name: "nil hours", hours: nil},
		{name: "empty string", hours: ptr.Ptr("")},
		{name: "no dash", hours: ptr.Ptr("09:00")},
		{name: "hour out of range", hours: ptr.Ptr("25:00-26:00")},
		{name: "open equals close", hours: ptr.Ptr("10:00-10:00")},
		{name: "open after close", hours: ptr.Ptr("10:00-09:00")},
		{name: "garbage", hours: ptr.Ptr("not a schedule")},
		{name: "too many parts", hours: ptr.Ptr("09:00-12:00-15:00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.hours, 60, testDate)
			require.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestGenerateSlots_NonPositiveSlotMinutes(t *testing.T) {
	assert.Empty(t, GenerateSlots(ptr.Ptr("09:00-21:00"), 0, testDate))
	assert.Empty(t, GenerateSlots(ptr.Ptr("09:00-21:00"), -30, testDate))
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	hours := ptr.Ptr("09:00-18:00")

	first := GenerateSlots(hours, 45, testDate)
	second := GenerateSlots(hours, 45, testDate)

	assert.Equal(t, first, second)
}

func TestFindSlot(t *testing.T) {
	slots := GenerateSlots(ptr.Ptr("09:00-12:00"), 60, testDate)

	slot, ok := FindSlot(slots, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC), slot.EndsAt)

	// Время между границами слотов не находится
	_, ok = FindSlot(slots, time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestSlot_DurationMinutes(t *testing.T) {
	slots := GenerateSlots(ptr.Ptr("09:00-12:00"), 90, testDate)

	require.Len(t, slots, 2)
	assert.Equal(t, 90, slots[0].DurationMinutes())
}

func TestValidOperatingHours(t *testing.T) {
	assert.True(t, ValidOperatingHours("09:00-21:00"))
	assert.True(t, ValidOperatingHours("9:00-21:00"))
	assert.False(t, ValidOperatingHours("21:00-09:00"))
	assert.False(t, ValidOperatingHours("09:00"))
	assert.False(t, ValidOperatingHours(""))
}
