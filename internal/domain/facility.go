package domain

import "time"

// Facility represents a bookable shared amenity of a community
// (pool, hall, court, gym and so on)
type Facility struct {
	ID           int64
	CommunityID  int64
	Name         string
	FacilityType string

	// OperatingHours encodes the daily open/close window as "HH:MM-HH:MM".
	// NULL or malformed values are a valid configuration state: the
	// facility simply produces zero slots.
	OperatingHours *string

	// SlotMins and Capacity are nullable; defaults apply when absent
	SlotMins *int
	Capacity *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotMinutes returns the slot duration, falling back to the default
func (f *Facility) SlotMinutes() int {
	if f.SlotMins == nil || *f.SlotMins <= 0 {
		return DefaultSlotMinutes
	}
	return *f.SlotMins
}

// MaxCapacity returns the per-slot people capacity, falling back to the default
func (f *Facility) MaxCapacity() int {
	if f.Capacity == nil || *f.Capacity <= 0 {
		return DefaultCapacity
	}
	return *f.Capacity
}

// Slots generates the facility's bookable slots for the given date
func (f *Facility) Slots(date time.Time) []Slot {
	return GenerateSlots(f.OperatingHours, f.SlotMinutes(), date)
}
