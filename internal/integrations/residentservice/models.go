package residentservice

// Роли жителей в сообществе
const (
	RoleResident = "resident"
	RoleAdmin    = "admin"
)

// Resident модель жителя из ResidentService
type Resident struct {
	ID          int64  `json:"id"`
	CommunityID int64  `json:"community_id"`
	DisplayName string `json:"display_name"`
	Unit        string `json:"unit"`
	Role        string `json:"role"`
}

// IsAdmin возвращает true, если житель является администратором сообщества
func (r *Resident) IsAdmin() bool {
	return r.Role == RoleAdmin
}

// BelongsTo возвращает true, если житель принадлежит указанному сообществу
func (r *Resident) BelongsTo(communityID int64) bool {
	return r.CommunityID == communityID
}

// ErrorResponse модель ошибки от ResidentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
