package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RCM-BookingService/internal/api/handlers"
	"github.com/m04kA/RCM-BookingService/internal/api/middleware"
	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAccessDenied  = "нет доступа к бронированиям этого пользователя"
	msgUserNotFound  = "житель не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{id}/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /users/{id}/bookings - Invalid date: %v", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.GetUserBookings(r.Context(), requesterID, userID, date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/bookings - Access denied: requester_id=%d, user_id=%d", requesterID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /users/{id}/bookings - User not found: requester_id=%d", requesterID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromBookings(result))
}
