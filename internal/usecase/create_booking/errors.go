package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrFacilityNotFound объект не найден
	ErrFacilityNotFound = errors.New("facility not found")
	// ErrInvalidSlot время не совпадает ни с одним слотом объекта
	ErrInvalidSlot = errors.New("requested time does not match any slot")
	// ErrPastSlot слот уже начался
	ErrPastSlot = errors.New("slot is in the past")
	// ErrDailyQuotaExceeded превышен дневной лимит минут бронирования
	ErrDailyQuotaExceeded = errors.New("daily booking quota exceeded")
	// ErrSlotFull вместимость слота исчерпана
	ErrSlotFull = errors.New("slot is at full capacity")
	// ErrResidentNotFound житель не найден
	ErrResidentNotFound = errors.New("resident not found")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)

// QuotaExceededError ошибка превышения дневного лимита с остатком минут
type QuotaExceededError struct {
	RemainingMinutes int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily booking quota exceeded: %d minutes remaining", e.RemainingMinutes)
}

// Is сопоставляет ошибку с сентинелом ErrDailyQuotaExceeded
func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrDailyQuotaExceeded
}
