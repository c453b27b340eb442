package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/events"
	bookingstore "github.com/m04kA/RCM-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	bookings  []*domain.Booking
	getErr    error
	cancelled []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus, _ *time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetByFacilityWithFilter(_ context.Context, _ domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeResidentClient struct {
	resident *residentservice.Resident
	err      error
}

func (f *fakeResidentClient) GetResident(_ context.Context, _ int64) (*residentservice.Resident, error) {
	return f.resident, f.err
}

type fakePublisher struct {
	published []events.BookingCancelledEvent
}

func (f *fakePublisher) PublishBookingCancelled(_ context.Context, event events.BookingCancelledEvent) error {
	f.published = append(f.published, event)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:          42,
		UserID:      7,
		FacilityID:  10,
		CommunityID: 1,
		StartsAt:    testNow.Add(2 * time.Hour),
		EndsAt:      testNow.Add(3 * time.Hour),
		Status:      domain.StatusConfirmed,
		PeopleCount: 2,
	}
}

func newTestService(repo *fakeBookingRepo, residents *fakeResidentClient, publisher *fakePublisher) *Service {
	return NewService(repo, residents, publisher, &fakeTxManager{}, &fixedTimeProvider{now: testNow}, nopLogger{})
}

func TestCancel_OwnerCancelsConfirmedBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	publisher := &fakePublisher{}
	svc := newTestService(repo, &fakeResidentClient{}, publisher)

	cancelled, err := svc.Cancel(context.Background(), 7, 42)
	require.NoError(t, err)

	assert.Equal(t, []int64{42}, repo.cancelled)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, testNow, *cancelled.CancelledAt)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, int64(42), publisher.published[0].BookingID)
}

func TestCancel_OnlyOwnerCanCancel(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := newTestService(repo, &fakeResidentClient{}, &fakePublisher{})

	// Даже администратор не может отменить чужое бронирование
	_, err := svc.Cancel(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{booking: booking}
	svc := newTestService(repo, &fakeResidentClient{}, &fakePublisher{})

	_, err := svc.Cancel(context.Background(), 7, 42)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingstore.ErrBookingNotFound}
	svc := newTestService(repo, &fakeResidentClient{}, &fakePublisher{})

	_, err := svc.Cancel(context.Background(), 7, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_OwnerHasAccess(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := newTestService(repo, &fakeResidentClient{}, &fakePublisher{})

	booking, err := svc.GetByID(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
}

func TestGetByID_CommunityAdminHasAccess(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	admin := &residentservice.Resident{ID: 99, CommunityID: 1, Role: residentservice.RoleAdmin}
	svc := newTestService(repo, &fakeResidentClient{resident: admin}, &fakePublisher{})

	booking, err := svc.GetByID(context.Background(), 99, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	stranger := &residentservice.Resident{ID: 99, CommunityID: 1, Role: residentservice.RoleResident}
	svc := newTestService(repo, &fakeResidentClient{resident: stranger}, &fakePublisher{})

	_, err := svc.GetByID(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminOfAnotherCommunityDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	admin := &residentservice.Resident{ID: 99, CommunityID: 2, Role: residentservice.RoleAdmin}
	svc := newTestService(repo, &fakeResidentClient{resident: admin}, &fakePublisher{})

	_, err := svc.GetByID(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_OwnBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}}
	svc := newTestService(repo, &fakeResidentClient{}, &fakePublisher{})

	result, err := svc.GetUserBookings(context.Background(), 7, 7, nil)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestGetUserBookings_ForeignBookingsRequireAdmin(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}}
	resident := &residentservice.Resident{ID: 99, CommunityID: 1, Role: residentservice.RoleResident}
	svc := newTestService(repo, &fakeResidentClient{resident: resident}, &fakePublisher{})

	_, err := svc.GetUserBookings(context.Background(), 99, 7, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetFacilityBookings_AdminOnly(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}}

	resident := &residentservice.Resident{ID: 99, CommunityID: 1, Role: residentservice.RoleResident}
	svc := newTestService(repo, &fakeResidentClient{resident: resident}, &fakePublisher{})

	_, err := svc.GetFacilityBookings(context.Background(), 99, 10, nil, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	admin := &residentservice.Resident{ID: 100, CommunityID: 1, Role: residentservice.RoleAdmin}
	svc = newTestService(repo, &fakeResidentClient{resident: admin}, &fakePublisher{})

	result, err := svc.GetFacilityBookings(context.Background(), 100, 10, nil, false)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
