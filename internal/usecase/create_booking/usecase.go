package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/events"
	facilitystore "github.com/m04kA/RCM-BookingService/internal/infra/storage/facility"
	"github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
)

type UseCase struct {
	bookingRepo     BookingRepository
	facilityRepo    FacilityRepository
	residentService ResidentServiceClient
	publisher       EventPublisher
	txManager       TransactionManager
	timeProvider    TimeProvider
	log             Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	residentService ResidentServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		facilityRepo:    facilityRepo,
		residentService: residentService,
		publisher:       publisher,
		txManager:       txManager,
		timeProvider:    timeProvider,
		log:             log,
	}
}

// Execute создаёт бронирование слота с проверкой лимитов и вместимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.log.Warn("CreateBooking: invalid request: user_id=%d, facility_id=%d: %v", req.UserID, req.FacilityID, err)
		return nil, err
	}

	// 2. Получение данных жителя с graceful degradation:
	// при недоступности ResidentService бронирование создаётся без имени
	var residentName *string
	resident, err := uc.residentService.GetResidentWithGracefulDegradation(ctx, req.UserID)
	switch {
	case err == nil:
		if !resident.BelongsTo(req.CommunityID) {
			uc.log.Warn("CreateBooking: resident does not belong to community: user_id=%d, community_id=%d", req.UserID, req.CommunityID)
			return nil, fmt.Errorf("%w: user_id %d in community %d", ErrResidentNotFound, req.UserID, req.CommunityID)
		}
		residentName = &resident.DisplayName

	case errors.Is(err, residentservice.ErrResidentNotFound):
		uc.log.Warn("CreateBooking: resident not found: user_id=%d", req.UserID)
		return nil, fmt.Errorf("%w: user_id %d", ErrResidentNotFound, req.UserID)

	case errors.Is(err, residentservice.ErrServiceDegraded):
		uc.log.Warn("CreateBooking: resident service degraded, creating booking without resident name: user_id=%d", req.UserID)

	default:
		uc.log.Error("CreateBooking: failed to get resident: user_id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get resident: %v", ErrInternal, err)
	}

	// 3. Создание бронирования в сериализуемой транзакции:
	// проверки квоты и вместимости должны видеть согласованный снимок
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, txErr := uc.createInTx(txCtx, req, residentName)
		if txErr != nil {
			return txErr
		}
		created = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Публикация события после коммита, best-effort
	event := events.BookingConfirmedEvent{
		BookingID:    created.ID,
		UserID:       created.UserID,
		FacilityID:   created.FacilityID,
		CommunityID:  created.CommunityID,
		FacilityName: created.FacilityName,
		StartsAt:     created.StartsAt,
		EndsAt:       created.EndsAt,
		PeopleCount:  created.PeopleCount,
		OccurredAt:   uc.timeProvider.Now(),
	}
	if pubErr := uc.publisher.PublishBookingConfirmed(ctx, event); pubErr != nil {
		uc.log.Error("CreateBooking: failed to publish event: booking_id=%d: %v", created.ID, pubErr)
	}

	uc.log.Info("CreateBooking: booking created: booking_id=%d, user_id=%d, facility_id=%d, starts_at=%s",
		created.ID, created.UserID, created.FacilityID, created.StartsAt.Format(time.RFC3339))

	return &Response{Booking: created}, nil
}

// createInTx выполняет цепочку проверок и вставку внутри транзакции.
// Порядок проверок фиксирован: существование слота, актуальность,
// дневной лимит, вместимость. Клиент получает первую нарушенную причину.
func (uc *UseCase) createInTx(ctx context.Context, req *Request, residentName *string) (*domain.Booking, error) {
	// 3.1. Получение объекта и проверка принадлежности сообществу
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilitystore.ErrFacilityNotFound) {
			uc.log.Warn("CreateBooking: facility not found: facility_id=%d", req.FacilityID)
			return nil, fmt.Errorf("%w: id %d", ErrFacilityNotFound, req.FacilityID)
		}
		uc.log.Error("CreateBooking: failed to get facility: facility_id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if facility.CommunityID != req.CommunityID {
		uc.log.Warn("CreateBooking: facility belongs to another community: facility_id=%d, community_id=%d", req.FacilityID, req.CommunityID)
		return nil, fmt.Errorf("%w: id %d in community %d", ErrFacilityNotFound, req.FacilityID, req.CommunityID)
	}

	// 3.2. Проверка 1: запрошенное время совпадает с границей слота
	date := req.StartsAt
	slots := facility.Slots(date)
	slot, ok := domain.FindSlot(slots, req.StartsAt)
	if !ok {
		uc.log.Warn("CreateBooking: requested time does not match any slot: facility_id=%d, starts_at=%s",
			req.FacilityID, req.StartsAt.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.StartsAt.Format(time.RFC3339))
	}

	// 3.3. Проверка 2: слот ещё не начался
	now := uc.timeProvider.Now()
	if slot.StartsAt.Before(now) {
		uc.log.Warn("CreateBooking: slot is in the past: facility_id=%d, starts_at=%s, now=%s",
			req.FacilityID, slot.StartsAt.Format(time.RFC3339), now.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: %s", ErrPastSlot, slot.StartsAt.Format(time.RFC3339))
	}

	// 3.4. Проверка 3: дневной лимит минут пользователя
	confirmed := domain.StatusConfirmed
	userBookings, err := uc.bookingRepo.GetByUserID(ctx, req.UserID, &confirmed, &date)
	if err != nil {
		uc.log.Error("CreateBooking: failed to get user bookings: user_id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user bookings: %v", ErrInternal, err)
	}

	slotMinutes := slot.DurationMinutes()
	usedMinutes := domain.BookedMinutes(userBookings)
	if usedMinutes+slotMinutes > domain.DailyQuotaMinutes {
		remaining := domain.DailyQuotaMinutes - usedMinutes
		if remaining < 0 {
			remaining = 0
		}
		uc.log.Warn("CreateBooking: daily quota exceeded: user_id=%d, used=%d, requested=%d, remaining=%d",
			req.UserID, usedMinutes, slotMinutes, remaining)
		return nil, &QuotaExceededError{RemainingMinutes: remaining}
	}

	// 3.5. Проверка 4: вместимость слота.
	// Бронирования дня блокируются через FOR UPDATE внутри транзакции
	facilityBookings, err := uc.bookingRepo.GetByFacilityWithFilter(ctx, domain.FacilityBookingsFilter{
		FacilityID: req.FacilityID,
		Date:       &date,
	})
	if err != nil {
		uc.log.Error("CreateBooking: failed to get facility bookings: facility_id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility bookings: %v", ErrInternal, err)
	}

	occupied := domain.SumPeopleAt(slot.StartsAt, facilityBookings)
	if occupied+req.PeopleCount > facility.MaxCapacity() {
		uc.log.Warn("CreateBooking: slot is full: facility_id=%d, starts_at=%s, occupied=%d, requested=%d, capacity=%d",
			req.FacilityID, slot.StartsAt.Format(time.RFC3339), occupied, req.PeopleCount, facility.MaxCapacity())
		return nil, fmt.Errorf("%w: %d of %d places occupied", ErrSlotFull, occupied, facility.MaxCapacity())
	}

	// 3.6. Вставка подтверждённого бронирования с денормализованными данными
	var note *string
	if req.Note != "" {
		note = &req.Note
	}

	booking := &domain.Booking{
		UserID:       req.UserID,
		FacilityID:   req.FacilityID,
		CommunityID:  req.CommunityID,
		StartsAt:     slot.StartsAt,
		EndsAt:       slot.EndsAt,
		Status:       domain.StatusConfirmed,
		PeopleCount:  req.PeopleCount,
		Note:         note,
		FacilityName: facility.Name,
		ResidentName: residentName,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.log.Error("CreateBooking: failed to create booking: user_id=%d, facility_id=%d: %v", req.UserID, req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return created, nil
}
