package get_available_slots

import (
	"github.com/m04kA/RCM-BookingService/internal/domain"
)

// calculateAvailableSpots вычисляет количество свободных мест для каждого слота
// Занятость считается по сумме peopleCount подтверждённых бронирований,
// начинающихся ровно в начале слота
func calculateAvailableSpots(
	slots []domain.Slot,
	bookings []*domain.Booking,
	capacity int,
) []Slot {
	result := make([]Slot, len(slots))

	for i, slot := range slots {
		taken := domain.SumPeopleAt(slot.StartsAt, bookings)

		availableSpots := capacity - taken
		if availableSpots < 0 {
			availableSpots = 0
		}

		result[i] = Slot{
			StartsAt:       slot.StartsAt,
			EndsAt:         slot.EndsAt,
			AvailableSpots: availableSpots,
			TotalSpots:     capacity,
		}
	}

	return result
}
