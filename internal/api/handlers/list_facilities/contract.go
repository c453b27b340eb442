package list_facilities

import (
	"context"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

type FacilityService interface {
	List(ctx context.Context, communityID int64) ([]*domain.Facility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
