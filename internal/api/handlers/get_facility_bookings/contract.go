package get_facility_bookings

import (
	"context"
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

type BookingService interface {
	GetFacilityBookings(ctx context.Context, requesterID, facilityID int64, date *time.Time, includeCancelled bool) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
