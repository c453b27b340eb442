package update_facility

import (
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/service/facilities/models"
)

// UpdateFacilityRequest HTTP request model, все поля опциональны
type UpdateFacilityRequest struct {
	Name           *string `json:"name,omitempty"`
	FacilityType   *string `json:"facilityType,omitempty"`
	OperatingHours *string `json:"operatingHours,omitempty"`
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
func (r *UpdateFacilityRequest) ToServiceInput() models.UpdateInput {
	return models.UpdateInput{
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
