package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/events"
	"github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus, date *time.Time) ([]*domain.Booking, error)
}

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// ResidentServiceClient интерфейс клиента для ResidentService
type ResidentServiceClient interface {
	GetResidentWithGracefulDegradation(ctx context.Context, userID int64) (*residentservice.Resident, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event events.BookingConfirmedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
