package create_booking

import (
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

// Request запрос на создание бронирования
type Request struct {
	UserID      int64
	FacilityID  int64
	CommunityID int64
	StartsAt    time.Time
	PeopleCount int
	Note        string
}

// Response результат создания бронирования
type Response struct {
	Booking *domain.Booking
}
