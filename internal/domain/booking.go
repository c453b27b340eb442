package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPending is transient: a booking request that has been accepted
	// for processing but not yet confirmed. Persisted rows are written
	// as confirmed; pending never survives a request.
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a facility reservation of exactly one slot by one resident
type Booking struct {
	ID          int64
	UserID      int64
	FacilityID  int64
	CommunityID int64
	StartsAt    time.Time
	EndsAt      time.Time
	Status      BookingStatus
	PeopleCount int
	Note        *string

	// Denormalized data for history
	FacilityName string
	ResidentName *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled.
// Only the two-transition lifecycle pending -> confirmed -> cancelled exists;
// a cancelled booking cannot be reverted.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// DurationMinutes returns the booked duration in whole minutes
func (b *Booking) DurationMinutes() int {
	return int(b.EndsAt.Sub(b.StartsAt) / time.Minute)
}

// FacilityBookingsFilter фильтр для получения бронирований объекта
type FacilityBookingsFilter struct {
	FacilityID       int64      // Обязательный параметр
	Date             *time.Time // День (опционально, если nil - без ограничения)
	Status           *BookingStatus
	IncludeCancelled bool // Включать ли отменённые бронирования
}

// BookedMinutes sums the duration of all confirmed bookings in the list.
// Used to compute a user's consumed daily quota.
func BookedMinutes(bookings []*Booking) int {
	total := 0
	for _, b := range bookings {
		if b.Status != StatusConfirmed {
			continue
		}
		total += b.DurationMinutes()
	}
	return total
}

// SumPeopleAt sums PeopleCount over confirmed bookings that start at exactly
// the given instant. Slots are booked whole, so exact start equality is the
// occupancy key.
func SumPeopleAt(start time.Time, bookings []*Booking) int {
	total := 0
	for _, b := range bookings {
		if b.Status != StatusConfirmed {
			continue
		}
		if b.StartsAt.Equal(start) {
			total += b.PeopleCount
		}
	}
	return total
}
