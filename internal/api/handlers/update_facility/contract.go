package update_facility

import (
	"context"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/service/facilities/models"
)

type FacilityService interface {
	Update(ctx context.Context, userID, facilityID int64, input models.UpdateInput) (*domain.Facility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
