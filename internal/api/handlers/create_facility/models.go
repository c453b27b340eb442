package create_facility

import (
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/service/facilities/models"
)

// CreateFacilityRequest HTTP request model
type CreateFacilityRequest struct {
	Name           string  `json:"name"`
	FacilityType   string  `json:"facilityType"`
	OperatingHours *string `json:"operatingHours,omitempty"` // "09:00-21:00"
	SlotMinutes    *int    `json:"slotMinutes,omitempty"`
	Capacity       *int    `json:"capacity,omitempty"`
}

// FacilityResponse HTTP response model
type FacilityResponse struct {
	ID             int64   `json:"id"`
	CommunityID    int64   `json:"communityId"`
	Name           string  `json:"name"`
	FacilityType   string  `json:"facilityType"`
	OperatingHours *string `json:"operatingHours,omitempty"`
	SlotMinutes    int     `json:"slotMinutes"`
	Capacity       int     `json:"capacity"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *CreateFacilityRequest) ToServiceInput(communityID int64) models.CreateInput {
	return models.CreateInput{
		CommunityID:    communityID,
		Name:           r.Name,
		FacilityType:   r.FacilityType,
		OperatingHours: r.OperatingHours,
		SlotMins:       r.SlotMinutes,
		Capacity:       r.Capacity,
	}
}

// FromFacility конвертирует доменную модель в HTTP response
func FromFacility(f *domain.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:             f.ID,
		CommunityID:    f.CommunityID,
		Name:           f.Name,
		FacilityType:   f.FacilityType,
		OperatingHours: f.OperatingHours,
		SlotMinutes:    f.SlotMinutes(),
		Capacity:       f.MaxCapacity(),
		CreatedAt:      f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      f.UpdatedAt.Format(time.RFC3339),
	}
}
