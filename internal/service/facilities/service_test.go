package facilities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
	"github.com/m04kA/RCM-BookingService/internal/service/facilities/models"
	"github.com/m04kA/RCM-BookingService/pkg/ptr"
)

type fakeFacilityRepo struct {
	facility *domain.Facility
	created  *domain.Facility
	updated  *domain.Facility
	getErr   error
}

func (f *fakeFacilityRepo) Create(_ context.Context, facility *domain.Facility) (*domain.Facility, error) {
	stored := *facility
	stored.ID = 10
	f.created = &stored
	return &stored, nil
}

func (f *fakeFacilityRepo) GetByID(_ context.Context, _ int64) (*domain.Facility, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.facility, nil
}

func (f *fakeFacilityRepo) ListByCommunity(_ context.Context, _ int64) ([]*domain.Facility, error) {
	if f.facility == nil {
		return []*domain.Facility{}, nil
	}
	return []*domain.Facility{f.facility}, nil
}

func (f *fakeFacilityRepo) Update(_ context.Context, _ int64, facility *domain.Facility) (*domain.Facility, error) {
	stored := *facility
	f.updated = &stored
	return &stored, nil
}

type fakeResidentClient struct {
	resident *residentservice.Resident
	err      error
}

func (f *fakeResidentClient) GetResident(_ context.Context, _ int64) (*residentservice.Resident, error) {
	return f.resident, f.err
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(format string, _ ...interface{}) {
	l.warnings = append(l.warnings, format)
}
func (l *recordingLogger) Error(string, ...interface{}) {}

func admin() *residentservice.Resident {
	return &residentservice.Resident{ID: 1, CommunityID: 1, Role: residentservice.RoleAdmin}
}

func resident() *residentservice.Resident {
	return &residentservice.Resident{ID: 2, CommunityID: 1, Role: residentservice.RoleResident}
}

func createInput() models.CreateInput {
	return models.CreateInput{
		CommunityID:    1,
		Name:           "Спортзал",
		FacilityType:   "gym",
		OperatingHours: ptr.Ptr("07:00-22:00"),
		SlotMins:       ptr.Ptr(60),
		Capacity:       ptr.Ptr(20),
	}
}

func TestCreate_AdminCreatesFacility(t *testing.T) {
	repo := &fakeFacilityRepo{}
	svc := NewService(repo, &fakeResidentClient{resident: admin()}, &recordingLogger{})

	created, err := svc.Create(context.Background(), 1, createInput())
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, "Спортзал", created.Name)
}

func TestCreate_ResidentDenied(t *testing.T) {
	svc := NewService(&fakeFacilityRepo{}, &fakeResidentClient{resident: resident()}, &recordingLogger{})

	_, err := svc.Create(context.Background(), 2, createInput())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_AdminOfAnotherCommunityDenied(t *testing.T) {
	outsider := &residentservice.Resident{ID: 3, CommunityID: 2, Role: residentservice.RoleAdmin}
	svc := NewService(&fakeFacilityRepo{}, &fakeResidentClient{resident: outsider}, &recordingLogger{})

	_, err := svc.Create(context.Background(), 3, createInput())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_ValidatesLimits(t *testing.T) {
	svc := NewService(&fakeFacilityRepo{}, &fakeResidentClient{resident: admin()}, &recordingLogger{})

	input := createInput()
	input.SlotMins = ptr.Ptr(3)
	_, err := svc.Create(context.Background(), 1, input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	input = createInput()
	input.Capacity = ptr.Ptr(1000)
	_, err = svc.Create(context.Background(), 1, input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	input = createInput()
	input.Name = ""
	_, err = svc.Create(context.Background(), 1, input)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_MalformedHoursWarnedNotRejected(t *testing.T) {
	repo := &fakeFacilityRepo{}
	log := &recordingLogger{}
	svc := NewService(repo, &fakeResidentClient{resident: admin()}, log)

	input := createInput()
	input.OperatingHours = ptr.Ptr("22:00-07:00")

	created, err := svc.Create(context.Background(), 1, input)
	require.NoError(t, err)
	assert.Equal(t, "22:00-07:00", *created.OperatingHours)
	assert.NotEmpty(t, log.warnings)
}

func TestUpdate_PartialUpdate(t *testing.T) {
	existing := &domain.Facility{
		ID:             10,
		CommunityID:    1,
		Name:           "Спортзал",
		FacilityType:   "gym",
		OperatingHours: ptr.Ptr("07:00-22:00"),
		SlotMins:       ptr.Ptr(60),
		Capacity:       ptr.Ptr(20),
	}
	repo := &fakeFacilityRepo{facility: existing}
	svc := NewService(repo, &fakeResidentClient{resident: admin()}, &recordingLogger{})

	updated, err := svc.Update(context.Background(), 1, 10, models.UpdateInput{
		Capacity: ptr.Ptr(30),
	})
	require.NoError(t, err)

	// Остальные поля не изменились
	assert.Equal(t, "Спортзал", updated.Name)
	assert.Equal(t, 30, *updated.Capacity)
	assert.Equal(t, "07:00-22:00", *updated.OperatingHours)
}

func TestList_ReturnsCommunityFacilities(t *testing.T) {
	repo := &fakeFacilityRepo{facility: &domain.Facility{ID: 10, CommunityID: 1, Name: "Бассейн"}}
	svc := NewService(repo, &fakeResidentClient{}, &recordingLogger{})

	facilities, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, facilities, 1)
}
