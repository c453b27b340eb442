package get_available_slots

import (
	"context"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByFacilityWithFilter получает бронирования объекта на конкретный день
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
