package domain

import (
	"strings"
	"time"

	"github.com/m04kA/RCM-BookingService/pkg/types"
)

// Slot represents a bookable time window derived from a facility's operating
// hours. Slots are never stored; they are regenerated on demand.
type Slot struct {
	StartsAt time.Time
	EndsAt   time.Time
}

// GenerateSlots derives the ordered sequence of bookable slots for one day.
//
// The operating hours string must match "HH:MM-HH:MM" (24-hour, hour may be
// a single digit) with open strictly before close. Any malformed or missing
// value yields an empty sequence; an empty result is the only failure signal,
// no error is ever raised.
//
// Slots tile the window left to right with no gaps or overlaps. A final
// partial slot that would cross the closing time is dropped, not truncated.
// The result depends only on the inputs, never on the current time.
func GenerateSlots(operatingHours *string, slotMins int, date time.Time) []Slot {
	slots := make([]Slot, 0)

	if operatingHours == nil || slotMins <= 0 {
		return slots
	}

	open, clos, ok := splitOperatingHours(*operatingHours)
	if !ok {
		return slots
	}

	start := open.OnDate(date)
	end := clos.OnDate(date)
	if !start.Before(end) {
		return slots
	}

	step := time.Duration(slotMins) * time.Minute
	for cursor := start; !cursor.Add(step).After(end); cursor = cursor.Add(step) {
		slots = append(slots, Slot{
			StartsAt: cursor,
			EndsAt:   cursor.Add(step),
		})
	}

	return slots
}

// DurationMinutes returns the slot length in whole minutes
func (s Slot) DurationMinutes() int {
	return int(s.EndsAt.Sub(s.StartsAt) / time.Minute)
}

// FindSlot returns the generated slot whose start equals startsAt
func FindSlot(slots []Slot, startsAt time.Time) (Slot, bool) {
	for _, s := range slots {
		if s.StartsAt.Equal(startsAt) {
			return s, true
		}
	}
	return Slot{}, false
}

// ValidOperatingHours reports whether the string parses as "HH:MM-HH:MM"
// with open strictly before close. Malformed hours are still storable;
// the check exists so callers can warn about a zero-slot configuration.
func ValidOperatingHours(raw string) bool {
	open, clos, ok := splitOperatingHours(raw)
	if !ok {
		return false
	}
	return open.IsBefore(clos)
}

// splitOperatingHours разбирает строку "HH:MM-HH:MM" на время открытия и закрытия
// Любое отклонение от формата трактуется как отсутствие расписания
func splitOperatingHours(raw string) (open, clos types.TimeString, ok bool) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return "", "", false
	}

	open, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", "", false
	}

	clos, err = types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", false
	}

	return open, clos, true
}
