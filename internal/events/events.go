package events

import "time"

// Имена очередей доменных событий
const (
	QueueBookingConfirmed = "booking.confirmed"
	QueueBookingCancelled = "booking.cancelled"
)

// BookingConfirmedEvent событие подтверждения бронирования
// Потребляется notification-сервисом для рассылки уведомлений
type BookingConfirmedEvent struct {
	BookingID    int64     `json:"bookingId"`
	UserID       int64     `json:"userId"`
	FacilityID   int64     `json:"facilityId"`
	CommunityID  int64     `json:"communityId"`
	FacilityName string    `json:"facilityName"`
	StartsAt     time.Time `json:"startsAt"`
	EndsAt       time.Time `json:"endsAt"`
	PeopleCount  int       `json:"peopleCount"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// BookingCancelledEvent событие отмены бронирования
type BookingCancelledEvent struct {
	BookingID   int64     `json:"bookingId"`
	UserID      int64     `json:"userId"`
	FacilityID  int64     `json:"facilityId"`
	CommunityID int64     `json:"communityId"`
	StartsAt    time.Time `json:"startsAt"`
	OccurredAt  time.Time `json:"occurredAt"`
}
