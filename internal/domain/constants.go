package domain

// Default facility configuration values
const (
	DefaultSlotMinutes = 60
	DefaultCapacity    = 10
)

// DailyQuotaMinutes is the per-user daily cap on total booked minutes
// across all facilities of a community
const DailyQuotaMinutes = 180

// Business validation constants
const (
	MinSlotMinutes = 5
	MaxSlotMinutes = 480 // 8 hours
	MinCapacity    = 1
	MaxCapacity    = 500
	MinPeopleCount = 1
	MaxPeopleCount = 50
	MaxNoteLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при подсчёте занятости слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
