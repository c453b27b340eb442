package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	FacilityID int64     // ID объекта
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов дня
type Response struct {
	FacilityID int64     // ID объекта
	Date       time.Time // Дата, на которую запрашивались слоты
	Slots      []Slot    // Список слотов с их заполненностью
}

// Slot модель временного слота
type Slot struct {
	StartsAt       time.Time // Начало слота
	EndsAt         time.Time // Конец слота
	AvailableSpots int       // Количество свободных мест
	TotalSpots     int       // Общее количество мест (вместимость объекта)
}
