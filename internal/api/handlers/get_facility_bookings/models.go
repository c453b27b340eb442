package get_facility_bookings

import (
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

// BookingsResponse HTTP response model
type BookingsResponse struct {
	FacilityID int64             `json:"facilityId"`
	Bookings   []BookingResponse `json:"bookings"`
}

// BookingResponse модель бронирования в списке объекта
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	StartsAt     string  `json:"startsAt"`
	EndsAt       string  `json:"endsAt"`
	Status       string  `json:"status"`
	PeopleCount  int     `json:"peopleCount"`
	Note         *string `json:"note,omitempty"`
	ResidentName *string `json:"residentName,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"`
}

// FromBookings конвертирует список доменных моделей в HTTP response
func FromBookings(facilityID int64, items []*domain.Booking) *BookingsResponse {
	bookings := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		resp := BookingResponse{
			ID:           b.ID,
			UserID:       b.UserID,
			StartsAt:     b.StartsAt.Format(time.RFC3339),
			EndsAt:       b.EndsAt.Format(time.RFC3339),
			Status:       string(b.Status),
			PeopleCount:  b.PeopleCount,
			Note:         b.Note,
			ResidentName: b.ResidentName,
		}
		if b.CancelledAt != nil {
			cancelledAt := b.CancelledAt.Format(time.RFC3339)
			resp.CancelledAt = &cancelledAt
		}
		bookings = append(bookings, resp)
	}
	return &BookingsResponse{FacilityID: facilityID, Bookings: bookings}
}
