package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/events"
	facilitystore "github.com/m04kA/RCM-BookingService/internal/infra/storage/facility"
	"github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
	"github.com/m04kA/RCM-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	userBookings     []*domain.Booking
	facilityBookings []*domain.Booking
	created          *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = 42
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetByFacilityWithFilter(_ context.Context, _ domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	return f.facilityBookings, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus, _ *time.Time) ([]*domain.Booking, error) {
	return f.userBookings, nil
}

type fakeFacilityRepo struct {
	facility *domain.Facility
	err      error
}

func (f *fakeFacilityRepo) GetByID(_ context.Context, _ int64) (*domain.Facility, error) {
	return f.facility, f.err
}

type fakeResidentClient struct {
	resident *residentservice.Resident
	err      error
}

func (f *fakeResidentClient) GetResidentWithGracefulDegradation(_ context.Context, _ int64) (*residentservice.Resident, error) {
	return f.resident, f.err
}

type fakePublisher struct {
	published []events.BookingConfirmedEvent
}

func (f *fakePublisher) PublishBookingConfirmed(_ context.Context, event events.BookingConfirmedEvent) error {
	f.published = append(f.published, event)
	return nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

var (
	testDay = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
)

func testFacility() *domain.Facility {
	return &domain.Facility{
		ID:             10,
		CommunityID:    1,
		Name:           "Бассейн",
		FacilityType:   "pool",
		OperatingHours: ptr.Ptr("09:00-21:00"),
		SlotMins:       ptr.Ptr(60),
		Capacity:       ptr.Ptr(10),
	}
}

func testResident() *residentservice.Resident {
	return &residentservice.Resident{
		ID:          7,
		CommunityID: 1,
		DisplayName: "Анна Иванова",
		Unit:        "A-101",
		Role:        residentservice.RoleResident,
	}
}

func testRequest() *Request {
	return &Request{
		UserID:      7,
		FacilityID:  10,
		CommunityID: 1,
		StartsAt:    testDay.Add(10 * time.Hour), // слот 10:00-11:00
		PeopleCount: 2,
	}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, facilityRepo *fakeFacilityRepo, residents *fakeResidentClient, publisher *fakePublisher) *UseCase {
	return NewUseCase(
		bookingRepo,
		facilityRepo,
		residents,
		publisher,
		&fakeTxManager{},
		&fixedTimeProvider{now: testNow},
		nopLogger{},
	)
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	publisher := &fakePublisher{}
	uc := newTestUseCase(bookingRepo, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{resident: testResident()}, publisher)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	booking := resp.Booking
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, testDay.Add(10*time.Hour), booking.StartsAt)
	assert.Equal(t, testDay.Add(11*time.Hour), booking.EndsAt)
	assert.Equal(t, "Бассейн", booking.FacilityName)
	require.NotNil(t, booking.ResidentName)
	assert.Equal(t, "Анна Иванова", *booking.ResidentName)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, int64(42), publisher.published[0].BookingID)
}

func TestExecute_InvalidSlotTime(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	req := testRequest()
	req.StartsAt = testDay.Add(10*time.Hour + 30*time.Minute) // между границами слотов

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_SlotOutsideOperatingHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	req := testRequest()
	req.StartsAt = testDay.Add(22 * time.Hour)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_PastSlot(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := NewUseCase(
		bookingRepo,
		&fakeFacilityRepo{facility: testFacility()},
		&fakeResidentClient{resident: testResident()},
		&fakePublisher{},
		&fakeTxManager{},
		&fixedTimeProvider{now: testDay.Add(11 * time.Hour)}, // слот 10:00 уже прошел
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrPastSlot)
	assert.Nil(t, bookingRepo.created)
}

func TestExecute_DailyQuotaExceeded(t *testing.T) {
	// 150 минут уже забронировано, запрос на 60 превышает лимит в 180
	bookingRepo := &fakeBookingRepo{
		userBookings: []*domain.Booking{
			{Status: domain.StatusConfirmed, StartsAt: testDay.Add(12 * time.Hour), EndsAt: testDay.Add(13 * time.Hour), PeopleCount: 1},
			{Status: domain.StatusConfirmed, StartsAt: testDay.Add(14 * time.Hour), EndsAt: testDay.Add(14*time.Hour + 90*time.Minute), PeopleCount: 1},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrDailyQuotaExceeded)

	var quotaErr *QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 30, quotaErr.RemainingMinutes)
}

func TestExecute_QuotaBoundaryAllowed(t *testing.T) {
	// 120 минут занято, запрос на 60 ровно достигает лимита
	bookingRepo := &fakeBookingRepo{
		userBookings: []*domain.Booking{
			{Status: domain.StatusConfirmed, StartsAt: testDay.Add(12 * time.Hour), EndsAt: testDay.Add(14 * time.Hour), PeopleCount: 1},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingsDoNotConsumeQuota(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		userBookings: []*domain.Booking{
			{Status: domain.StatusCancelled, StartsAt: testDay.Add(12 * time.Hour), EndsAt: testDay.Add(15 * time.Hour), PeopleCount: 1},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.NoError(t, err)
}

func TestExecute_SlotFull(t *testing.T) {
	slotStart := testDay.Add(10 * time.Hour)
	// 9 из 10 мест занято, запрос на 2 человека не помещается
	bookingRepo := &fakeBookingRepo{
		facilityBookings: []*domain.Booking{
			{Status: domain.StatusConfirmed, StartsAt: slotStart, EndsAt: slotStart.Add(time.Hour), PeopleCount: 5},
			{Status: domain.StatusConfirmed, StartsAt: slotStart, EndsAt: slotStart.Add(time.Hour), PeopleCount: 4},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotFull)

	// Один человек еще помещается
	req := testRequest()
	req.PeopleCount = 1
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{err: facilitystore.ErrFacilityNotFound}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_FacilityFromAnotherCommunity(t *testing.T) {
	facility := testFacility()
	facility.CommunityID = 99
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: facility}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_ResidentFromAnotherCommunity(t *testing.T) {
	resident := testResident()
	resident.CommunityID = 99
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{resident: resident}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrResidentNotFound)
}

func TestExecute_GracefulDegradationWithoutResidentName(t *testing.T) {
	// ResidentService недоступен: бронирование создается без имени жителя
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{err: residentservice.ErrServiceDegraded}, &fakePublisher{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.Booking.ResidentName)
}

func TestExecute_SmallFacilityScenario(t *testing.T) {
	facility := testFacility()
	facility.OperatingHours = ptr.Ptr("09:00-12:00")
	facility.Capacity = ptr.Ptr(2)

	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeFacilityRepo{facility: facility}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	// Первое бронирование занимает слот 09:00 целиком
	first := testRequest()
	first.StartsAt = testDay.Add(9 * time.Hour)
	first.PeopleCount = 2

	resp, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)
	bookingRepo.facilityBookings = []*domain.Booking{resp.Booking}

	// Второй запрос на тот же слот не помещается
	second := testRequest()
	second.UserID = 8
	second.StartsAt = testDay.Add(9 * time.Hour)
	second.PeopleCount = 1

	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotFull)

	// Соседний слот свободен
	third := testRequest()
	third.UserID = 8
	third.StartsAt = testDay.Add(10 * time.Hour)
	third.PeopleCount = 1

	_, err = uc.Execute(context.Background(), third)
	assert.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: testFacility()}, &fakeResidentClient{resident: testResident()}, &fakePublisher{})

	req := testRequest()
	req.PeopleCount = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
