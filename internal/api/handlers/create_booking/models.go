package create_booking

import (
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	createBooking "github.com/m04kA/RCM-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID  int64  `json:"facilityId"`
	CommunityID int64  `json:"communityId"`
	StartsAt    string `json:"startsAt"` // "2026-09-01T10:00:00Z"
	PeopleCount *int   `json:"peopleCount,omitempty"`
	Note        string `json:"note,omitempty"`
}

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
	Note         *string `json:"note,omitempty"`
	FacilityName string  `json:"facilityName"`
	ResidentName *string `json:"residentName,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}

	peopleCount := 1
	if r.PeopleCount != nil {
		peopleCount = *r.PeopleCount
	}

	return &createBooking.Request{
		UserID:      userID,
		FacilityID:  r.FacilityID,
		CommunityID: r.CommunityID,
		StartsAt:    startsAt,
		PeopleCount: peopleCount,
		Note:        r.Note,
	}, nil
}

// FromBooking конвертирует доменную модель в HTTP response
func FromBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		FacilityID:   b.FacilityID,
		CommunityID:  b.CommunityID,
		StartsAt:     b.StartsAt.Format(time.RFC3339),
		EndsAt:       b.EndsAt.Format(time.RFC3339),
		Status:       string(b.Status),
		PeopleCount:  b.PeopleCount,
		Note:         b.Note,
		FacilityName: b.FacilityName,
		ResidentName: b.ResidentName,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
