package get_facility_bookings

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
	msgInvalidFacilityID = "некорректный идентификатор объекта"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAccessDenied      = "просмотр бронирований объекта доступен только администраторам"
	msgUserNotFound      = "житель не найден"
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

// Handle GET /api/v1/facilities/{id}/bookings?date=YYYY-MM-DD&includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	facilityID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || facilityID <= 0 {
		h.logger.Warn("GET /facilities/{id}/bookings - Invalid facility ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/bookings - Invalid date: %v", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	includeCancelled := r.URL.Query().Get("includeCancelled") == "true"

	result, err := h.service.GetFacilityBookings(r.Context(), requesterID, facilityID, date, includeCancelled)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /facilities/{id}/bookings - Access denied: requester_id=%d, facility_id=%d", requesterID, facilityID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /facilities/{id}/bookings - User not found: requester_id=%d", requesterID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /facilities/{id}/bookings - Failed to get bookings: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromBookings(facilityID, result))
}
