package get_user_bookings

import (
	"context"
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, requesterID, userID int64, date *time.Time) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
