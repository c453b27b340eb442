package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied доступ к бронированию запрещён
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel бронирование нельзя отменить в текущем статусе
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrUserNotFound житель не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
