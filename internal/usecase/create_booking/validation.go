package create_booking

import (
	"fmt"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facility_id must be positive", ErrInvalidInput)
	}

	if req.CommunityID <= 0 {
		return fmt.Errorf("%w: community_id must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: starts_at is required", ErrInvalidInput)
	}

	if req.PeopleCount < domain.MinPeopleCount || req.PeopleCount > domain.MaxPeopleCount {
		return fmt.Errorf("%w: people_count must be between %d and %d", ErrInvalidInput, domain.MinPeopleCount, domain.MaxPeopleCount)
	}

	if len(req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}
