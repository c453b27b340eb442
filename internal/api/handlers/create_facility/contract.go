package create_facility

import (
	"context"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/service/facilities/models"
)

type FacilityService interface {
	Create(ctx context.Context, userID int64, input models.CreateInput) (*domain.Facility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
