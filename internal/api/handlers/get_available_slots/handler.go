package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RCM-BookingService/internal/api/handlers"
	"github.com/m04kA/RCM-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/RCM-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidFacilityID = "некорректный идентификатор объекта"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFacilityNotFound  = "объект не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{id}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || facilityID <= 0 {
		h.logger.Warn("GET /facilities/{id}/available-slots - Invalid facility ID: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Дата по умолчанию - сегодня
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err = time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/available-slots - Invalid date: %v", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		FacilityID: facilityID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/available-slots - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/available-slots - Invalid input: facility_id=%d: %v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)

		default:
			h.logger.Error("GET /facilities/{id}/available-slots - Failed to get slots: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
