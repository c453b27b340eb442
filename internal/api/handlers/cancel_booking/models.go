package cancel_booking

import (
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

// BookingResponse HTTP response model
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

// FromBooking конвертирует доменную модель в HTTP response
func FromBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
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
	return resp
}
