package get_available_slots

import (
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/RCM-BookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	FacilityID int64          `json:"facilityId"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// SlotResponse модель слота в HTTP ответе
type SlotResponse struct {
	StartsAt       string `json:"startsAt"`
	EndsAt         string `json:"endsAt"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartsAt:       s.StartsAt.Format(time.RFC3339),
			EndsAt:         s.EndsAt.Format(time.RFC3339),
			AvailableSpots: s.AvailableSpots,
			TotalSpots:     s.TotalSpots,
		})
	}

	return &SlotsResponse{
		FacilityID: resp.FacilityID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
