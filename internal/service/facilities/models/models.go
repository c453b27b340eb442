package models

// CreateInput данные для создания объекта инфраструктуры
type CreateInput struct {
	CommunityID    int64
	Name           string
	FacilityType   string
	OperatingHours *string
	SlotMins       *int
	Capacity       *int
}

// UpdateInput данные для частичного обновления объекта.
// nil-поля остаются без изменений.
type UpdateInput struct {
	Name           *string
	FacilityType   *string
	OperatingHours *string
	SlotMins       *int
	Capacity       *int
}
