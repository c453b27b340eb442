package bookings

import (
	"context"
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/events"
	"github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus, date *time.Time) ([]*domain.Booking, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

// ResidentServiceClient интерфейс клиента для ResidentService
type ResidentServiceClient interface {
	GetResident(ctx context.Context, userID int64) (*residentservice.Resident, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingCancelled(ctx context.Context, event events.BookingCancelledEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
