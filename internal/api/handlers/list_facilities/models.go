package list_facilities

import (
	"github.com/m04kA/RCM-BookingService/internal/domain"
)

// FacilitiesResponse HTTP response model
type FacilitiesResponse struct {
	CommunityID int64              `json:"communityId"`
	Facilities  []FacilityResponse `json:"facilities"`
}

// FacilityResponse модель объекта в списке
type FacilityResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	FacilityType   string  `json:"facilityType"`
	OperatingHours *string `json:"operatingHours,omitempty"`
	SlotMinutes    int     `json:"slotMinutes"`
	Capacity       int     `json:"capacity"`
}

// FromFacilities конвертирует список доменных моделей в HTTP response.
// Отдаются эффективные значения длительности слота и вместимости,
// с учётом значений по умолчанию.
func FromFacilities(communityID int64, items []*domain.Facility) *FacilitiesResponse {
	facilities := make([]FacilityResponse, 0, len(items))
	for _, f := range items {
		facilities = append(facilities, FacilityResponse{
			ID:             f.ID,
			Name:           f.Name,
			FacilityType:   f.FacilityType,
			OperatingHours: f.OperatingHours,
			SlotMinutes:    f.SlotMinutes(),
			Capacity:       f.MaxCapacity(),
		})
	}
	return &FacilitiesResponse{CommunityID: communityID, Facilities: facilities}
}
