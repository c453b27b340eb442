package create_facility

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
	msgInvalidCommunityID = "некорректный идентификатор сообщества"
	msgInvalidInput       = "некорректные параметры объекта"
	msgAccessDenied       = "создание объектов доступно только администраторам"
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

// Handle POST /api/v1/communities/{id}/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	communityID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || communityID <= 0 {
		h.logger.Warn("POST /communities/{id}/facilities - Invalid community ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidCommunityID)
		return
	}

	var req CreateFacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /communities/{id}/facilities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	facility, err := h.service.Create(r.Context(), userID, req.ToServiceInput(communityID))
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("POST /communities/{id}/facilities - Invalid input: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, facilities.ErrAccessDenied):
			h.logger.Warn("POST /communities/{id}/facilities - Access denied: user_id=%d, community_id=%d", userID, communityID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, facilities.ErrUserNotFound):
			h.logger.Warn("POST /communities/{id}/facilities - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /communities/{id}/facilities - Failed to create facility: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /communities/{id}/facilities - Facility created: facility_id=%d, community_id=%d", facility.ID, facility.CommunityID)
	handlers.RespondJSON(w, http.StatusCreated, FromFacility(facility))
}
