package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString время в формате "HH:MM" (24-часовой формат)
// Используется для рабочих часов и других значений "время без даты"
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
// Допускаются значения "9:00" и "09:00"; часы 0-23, минуты 00-59
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат строки
func (t TimeString) Validate() error {
	_, _, err := t.parse()
	return err
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает час; для невалидного значения возвращает 0
func (t TimeString) Hour() int {
	h, _, _ := t.parse()
	return h
}

// Minute возвращает минуты; для невалидного значения возвращает 0
func (t TimeString) Minute() int {
	_, m, _ := t.parse()
	return m
}

// MinutesOfDay возвращает количество минут с начала суток
func (t TimeString) MinutesOfDay() int {
	h, m, err := t.parse()
	if err != nil {
		return 0
	}
	return h*60 + m
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesOfDay() < other.MinutesOfDay()
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesOfDay() > other.MinutesOfDay()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	h, m, err := t.parse()
	if err != nil {
		return "", err
	}

	total := h*60 + m + minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)), nil
}

// OnDate возвращает момент времени на указанную дату в её локации
func (t TimeString) OnDate(date time.Time) time.Time {
	h, m, err := t.parse()
	if err != nil {
		return time.Time{}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// parse разбирает строку на часы и минуты с валидацией диапазонов
// Минуты всегда две цифры, часы - одна или две ("9:00" и "09:00" допустимы)
func (t TimeString) parse() (hour, minute int, err error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	return hour, minute, nil
}
