package update_facility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RCM-BookingService/internal/api/handlers"
	"github.com/m04kA/RCM-BookingService/internal/api/middleware"
	"github.com/m04kA/RCM-BookingService/internal/service/facilities"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFacilityID  = "некорректный идентификатор объекта"
	msgInvalidInput       = "некорректные параметры объекта"
	msgFacilityNotFound   = "объект не найден"
	msgAccessDenied       = "изменение объектов доступно только администраторам"
	msgUserNotFound       = "житель не найден"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/facilities/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	facilityID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || facilityID <= 0 {
		h.logger.Warn("PUT /facilities/{id} - Invalid facility ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	var req UpdateFacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	facility, err := h.service.Update(r.Context(), userID, facilityID, req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("PUT /facilities/{id} - Invalid input: facility_id=%d: %v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("PUT /facilities/{id} - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, facilities.ErrAccessDenied):
			h.logger.Warn("PUT /facilities/{id} - Access denied: user_id=%d, facility_id=%d", userID, facilityID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, facilities.ErrUserNotFound):
			h.logger.Warn("PUT /facilities/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("PUT /facilities/{id} - Failed to update facility: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /facilities/{id} - Facility updated: facility_id=%d", facilityID)
	handlers.RespondJSON(w, http.StatusOK, FromFacility(facility))
}
