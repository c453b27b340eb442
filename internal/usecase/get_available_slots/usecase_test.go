package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	facilitystore "github.com/m04kA/RCM-BookingService/internal/infra/storage/facility"
	"github.com/m04kA/RCM-BookingService/pkg/ptr"
)

type fakeFacilityRepo struct {
	facility *domain.Facility
	err      error
}

func (f *fakeFacilityRepo) GetByID(_ context.Context, _ int64) (*domain.Facility, error) {
	return f.facility, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByFacilityWithFilter(_ context.Context, _ domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func testFacility() *domain.Facility {
	return &domain.Facility{
		ID:             10,
		CommunityID:    1,
		Name:           "Теннисный корт",
		FacilityType:   "court",
		OperatingHours: ptr.Ptr("09:00-12:00"),
		SlotMins:       ptr.Ptr(60),
		Capacity:       ptr.Ptr(4),
	}
}

func TestExecute_ReturnsSlotsWithAvailability(t *testing.T) {
	slotStart := testDate.Add(10 * time.Hour)
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{Status: domain.StatusConfirmed, StartsAt: slotStart, EndsAt: slotStart.Add(time.Hour), PeopleCount: 3},
			// Отмененное бронирование не занимает места
			{Status: domain.StatusCancelled, StartsAt: slotStart, EndsAt: slotStart.Add(time.Hour), PeopleCount: 2},
		},
	}
	uc := NewUseCase(&fakeFacilityRepo{facility: testFacility()}, bookingRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, 4, resp.Slots[0].AvailableSpots)
	assert.Equal(t, 1, resp.Slots[1].AvailableSpots)
	assert.Equal(t, 4, resp.Slots[2].AvailableSpots)
	for _, s := range resp.Slots {
		assert.Equal(t, 4, s.TotalSpots)
	}
}

func TestExecute_AvailabilityNeverNegative(t *testing.T) {
	slotStart := testDate.Add(9 * time.Hour)
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{Status: domain.StatusConfirmed, StartsAt: slotStart, EndsAt: slotStart.Add(time.Hour), PeopleCount: 9},
		},
	}
	facility := testFacility()
	facility.Capacity = ptr.Ptr(2)
	uc := NewUseCase(&fakeFacilityRepo{facility: facility}, bookingRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Slots[0].AvailableSpots)
}

func TestExecute_MalformedHoursYieldEmptySlots(t *testing.T) {
	facility := testFacility()
	facility.OperatingHours = ptr.Ptr("corrupted")
	uc := NewUseCase(&fakeFacilityRepo{facility: facility}, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NilHoursYieldEmptySlots(t *testing.T) {
	facility := testFacility()
	facility.OperatingHours = nil
	uc := NewUseCase(&fakeFacilityRepo{facility: facility}, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := NewUseCase(&fakeFacilityRepo{err: facilitystore.ErrFacilityNotFound}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 10, Date: testDate})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeFacilityRepo{facility: testFacility()}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FacilityID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
