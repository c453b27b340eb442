package get_user_bookings

import (
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BookingResponse модель бронирования в списке
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	FacilityID   int64   `json:"facilityId"`
	CommunityID  int64   `json:"communityId"`
	StartsAt     string  `json:"startsAt"`
	EndsAt       string  `json:"endsAt"`
	Status       string  `json:"status"`
	PeopleCount  int     `json:"peopleCount"`
	FacilityName string  `json:"facilityName"`
	CancelledAt  *string `json:"cancelledAt,omitempty"`
}

// FromBookings конвертирует список доменных моделей в HTTP response
func FromBookings(items []*domain.Booking) *BookingsResponse {
	bookings := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		resp := BookingResponse{
			ID:           b.ID,
			UserID:       b.UserID,
			FacilityID:   b.FacilityID,
			CommunityID:  b.CommunityID,
			StartsAt:     b.StartsAt.Format(time.RFC3339),
			EndsAt:       b.EndsAt.Format(time.RFC3339),
			Status:       string(b.Status),
			PeopleCount:  b.PeopleCount,
			FacilityName: b.FacilityName,
		}
		if b.CancelledAt != nil {
			cancelledAt := b.CancelledAt.Format(time.RFC3339)
			resp.CancelledAt = &cancelledAt
		}
		bookings = append(bookings, resp)
	}
	return &BookingsResponse{Bookings: bookings}
}
