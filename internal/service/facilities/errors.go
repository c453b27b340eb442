package facilities

import "errors"

var (
	// ErrFacilityNotFound объект не найден
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrAccessDenied операция доступна только администраторам сообщества
	ErrAccessDenied = errors.New("access denied")

	// ErrUserNotFound житель не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
