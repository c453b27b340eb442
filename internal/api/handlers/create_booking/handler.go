package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/RCM-BookingService/internal/api/handlers"
	"github.com/m04kA/RCM-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/RCM-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartsAt    = "некорректный формат времени начала, ожидается RFC 3339"
	msgInvalidInput       = "некорректные данные бронирования"
	msgFacilityNotFound   = "объект не найден"
	msgResidentNotFound   = "житель не найден"
	msgInvalidSlot        = "выбранное время не совпадает ни с одним слотом"
	msgPastSlot           = "слот уже начался"
	msgQuotaExceeded      = "превышен дневной лимит бронирования, осталось %d минут"
	msgSlotFull           = "в выбранном слоте нет свободных мест"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse starts_at: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartsAt)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var quotaErr *createBooking.QuotaExceededError

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, facility_id=%d: %v", userID, req.FacilityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createBooking.ErrResidentNotFound):
			h.logger.Warn("POST /bookings - Resident not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgResidentNotFound)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: user_id=%d, facility_id=%d", userID, req.FacilityID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrPastSlot):
			h.logger.Warn("POST /bookings - Slot in the past: user_id=%d, facility_id=%d", userID, req.FacilityID)
			handlers.RespondBadRequest(w, msgPastSlot)

		case errors.As(err, &quotaErr):
			h.logger.Warn("POST /bookings - Daily quota exceeded: user_id=%d, remaining=%d", userID, quotaErr.RemainingMinutes)
			handlers.RespondConflict(w, fmt.Sprintf(msgQuotaExceeded, quotaErr.RemainingMinutes))

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: user_id=%d, facility_id=%d", userID, req.FacilityID)
			handlers.RespondConflict(w, msgSlotFull)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, facility_id=%d, error=%v",
				userID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromBooking(result.Booking)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, facility_id=%d",
		result.Booking.ID, userID, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
