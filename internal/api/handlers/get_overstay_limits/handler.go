package get_overstay_limits

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RCM-BookingService/internal/api/handlers"
	"github.com/m04kA/RCM-BookingService/internal/domain"
)

const msgInvalidCommunityID = "некорректный идентификатор сообщества"

type Logger interface {
	Warn(format string, v ...interface{})
}

// Handler отдаёт единую таблицу лимитов пребывания посетителей.
// Лимиты одинаковы для всех сообществ и задаются конфигурацией сервиса.
type Handler struct {
	limits domain.OverstayLimits
	logger Logger
}

func NewHandler(limits domain.OverstayLimits, logger Logger) *Handler {
	return &Handler{
		limits: limits,
		logger: logger,
	}
}

// OverstayLimitsResponse HTTP response model
type OverstayLimitsResponse struct {
	CommunityID int64          `json:"communityId"`
	Limits      map[string]int `json:"limits"` // тип посетителя -> лимит в минутах
}

// Handle GET /api/v1/communities/{id}/overstay-limits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	communityID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || communityID <= 0 {
		h.logger.Warn("GET /communities/{id}/overstay-limits - Invalid community ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidCommunityID)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, OverstayLimitsResponse{
		CommunityID: communityID,
		Limits:      h.limits,
	})
}
