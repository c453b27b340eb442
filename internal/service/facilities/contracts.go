package facilities

import (
	"context"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
)

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error)
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	ListByCommunity(ctx context.Context, communityID int64) ([]*domain.Facility, error)
	Update(ctx context.Context, id int64, facility *domain.Facility) (*domain.Facility, error)
}

// ResidentServiceClient интерфейс клиента для ResidentService
type ResidentServiceClient interface {
	GetResident(ctx context.Context, userID int64) (*residentservice.Resident, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
