package list_facilities

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RCM-BookingService/internal/api/handlers"
)

const msgInvalidCommunityID = "некорректный идентификатор сообщества"

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

// Handle GET /api/v1/communities/{id}/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	communityID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || communityID <= 0 {
		h.logger.Warn("GET /communities/{id}/facilities - Invalid community ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidCommunityID)
		return
	}

	facilities, err := h.service.List(r.Context(), communityID)
	if err != nil {
		h.logger.Error("GET /communities/{id}/facilities - Failed to list facilities: community_id=%d, error=%v", communityID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromFacilities(communityID, facilities))
}
