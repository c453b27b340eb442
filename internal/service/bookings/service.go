package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/events"
	bookingstore "github.com/m04kA/RCM-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
)

type Service struct {
	repo            BookingRepository
	residentService ResidentServiceClient
	publisher       EventPublisher
	txManager       TransactionManager
	timeProvider    TimeProvider
	log             Logger
}

func NewService(
	repo BookingRepository,
	residentService ResidentServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	timeProvider TimeProvider,
	log Logger,
) *Service {
	return &Service{
		repo:            repo,
		residentService: residentService,
		publisher:       publisher,
		txManager:       txManager,
		timeProvider:    timeProvider,
		log:             log,
	}
}

// GetByID возвращает бронирование по ID.
// Доступ имеют владелец бронирования и администратор сообщества.
func (s *Service) GetByID(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
		}
		s.log.Error("GetByID: failed to get booking: booking_id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.IsOwnedBy(userID) {
		return booking, nil
	}

	// Не владелец: проверяем права администратора сообщества
	isAdmin, err := s.isCommunityAdmin(ctx, userID, booking.CommunityID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		s.log.Warn("GetByID: access denied: user_id=%d, booking_id=%d", userID, bookingID)
		return nil, fmt.Errorf("%w: booking %d", ErrAccessDenied, bookingID)
	}

	return booking, nil
}

// GetUserBookings возвращает бронирования пользователя, опционально за день.
// Свои бронирования видит каждый житель, чужие - только администратор.
func (s *Service) GetUserBookings(ctx context.Context, requesterID, userID int64, date *time.Time) ([]*domain.Booking, error) {
	if requesterID != userID {
		resident, err := s.getResident(ctx, requesterID)
		if err != nil {
			return nil, err
		}
		if !resident.IsAdmin() {
			s.log.Warn("GetUserBookings: access denied: requester_id=%d, user_id=%d", requesterID, userID)
			return nil, fmt.Errorf("%w: bookings of user %d", ErrAccessDenied, userID)
		}
	}

	bookings, err := s.repo.GetByUserID(ctx, userID, nil, date)
	if err != nil {
		s.log.Error("GetUserBookings: failed to get bookings: user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return bookings, nil
}

// GetFacilityBookings возвращает бронирования объекта за день.
// Доступно только администраторам сообщества.
func (s *Service) GetFacilityBookings(ctx context.Context, requesterID, facilityID int64, date *time.Time, includeCancelled bool) ([]*domain.Booking, error) {
	resident, err := s.getResident(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !resident.IsAdmin() {
		s.log.Warn("GetFacilityBookings: access denied: requester_id=%d, facility_id=%d", requesterID, facilityID)
		return nil, fmt.Errorf("%w: facility %d bookings", ErrAccessDenied, facilityID)
	}

	bookings, err := s.repo.GetByFacilityWithFilter(ctx, domain.FacilityBookingsFilter{
		FacilityID:       facilityID,
		Date:             date,
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		s.log.Error("GetFacilityBookings: failed to get bookings: facility_id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return bookings, nil
}

// Cancel отменяет бронирование.
// Отменить бронирование может только его владелец и только из статуса confirmed.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получение бронирования и проверка статуса внутри транзакции:
		// повторная отмена и гонка двух запросов дают ErrCannotCancel
		booking, err := s.repo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingstore.ErrBookingNotFound) {
				return fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
			}
			s.log.Error("Cancel: failed to get booking: booking_id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Проверка владельца
		if !booking.IsOwnedBy(userID) {
			s.log.Warn("Cancel: access denied: user_id=%d, booking_id=%d, owner_id=%d", userID, bookingID, booking.UserID)
			return fmt.Errorf("%w: booking %d", ErrAccessDenied, bookingID)
		}

		// 3. Проверка статуса
		if !booking.CanBeCancelled() {
			s.log.Warn("Cancel: booking cannot be cancelled: booking_id=%d, status=%s", bookingID, booking.Status)
			return fmt.Errorf("%w: id %d, status %s", ErrCannotCancel, bookingID, booking.Status)
		}

		// 4. Отмена
		if err := s.repo.Cancel(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingstore.ErrBookingNotFound) {
				return fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
			}
			s.log.Error("Cancel: failed to cancel booking: booking_id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		now := s.timeProvider.Now()
		booking.Status = domain.StatusCancelled
		booking.CancelledAt = &now
		cancelled = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Публикация события после коммита, best-effort
	event := events.BookingCancelledEvent{
		BookingID:   cancelled.ID,
		UserID:      cancelled.UserID,
		FacilityID:  cancelled.FacilityID,
		CommunityID: cancelled.CommunityID,
		StartsAt:    cancelled.StartsAt,
		OccurredAt:  s.timeProvider.Now(),
	}
	if pubErr := s.publisher.PublishBookingCancelled(ctx, event); pubErr != nil {
		s.log.Error("Cancel: failed to publish event: booking_id=%d: %v", cancelled.ID, pubErr)
	}

	s.log.Info("Cancel: booking cancelled: booking_id=%d, user_id=%d", bookingID, userID)

	return cancelled, nil
}

// getResident получает жителя из ResidentService без graceful degradation:
// для проверки прав доступа отсутствие данных означает отказ
func (s *Service) getResident(ctx context.Context, userID int64) (*residentservice.Resident, error) {
	resident, err := s.residentService.GetResident(ctx, userID)
	if err != nil {
		if errors.Is(err, residentservice.ErrResidentNotFound) {
			return nil, fmt.Errorf("%w: user_id %d", ErrUserNotFound, userID)
		}
		s.log.Error("getResident: failed to get resident: user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get resident: %v", ErrInternal, err)
	}
	return resident, nil
}

// isCommunityAdmin проверяет, что пользователь является администратором сообщества
func (s *Service) isCommunityAdmin(ctx context.Context, userID, communityID int64) (bool, error) {
	resident, err := s.getResident(ctx, userID)
	if err != nil {
		return false, err
	}
	return resident.IsAdmin() && resident.BelongsTo(communityID), nil
}
