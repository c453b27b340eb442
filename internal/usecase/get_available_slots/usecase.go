package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	facilityRepo "github.com/m04kA/RCM-BookingService/internal/infra/storage/facility"
	"github.com/m04kA/RCM-BookingService/pkg/ptr"
)

// UseCase use case для получения слотов объекта на день
type UseCase struct {
	facilityRepo FacilityRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	facilityRepo FacilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		facilityRepo: facilityRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Генерация слотов - чистая функция от рабочих часов объекта и даты:
// результат не зависит от текущего времени, два одинаковых запроса дают
// одинаковые последовательности. Некорректные рабочие часы - не ошибка,
// а нормальное состояние "слотов нет"
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: facility=%d, date=%s",
		req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Генерируем слоты дня
	slots := facility.Slots(req.Date)
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: facility id=%d yields no slots on %s (operating hours missing or malformed)",
			req.FacilityID, req.Date.Format(domain.DateFormat))
		return &Response{
			FacilityID: req.FacilityID,
			Date:       req.Date,
			Slots:      []Slot{},
		}, nil
	}

	// 4. Получаем активные бронирования на этот день
	filter := domain.FacilityBookingsFilter{
		FacilityID:       req.FacilityID,
		Date:             ptr.Ptr(req.Date),
		IncludeCancelled: false,
	}

	bookings, err := uc.bookingRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Вычисляем заполненность каждого слота
	result := calculateAvailableSpots(slots, bookings, facility.MaxCapacity())

	uc.logger.Info("GetAvailableSlots: generated %d slots for facility=%d, date=%s",
		len(result), req.FacilityID, req.Date.Format(domain.DateFormat))

	return &Response{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Slots:      result,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
