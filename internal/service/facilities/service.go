package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	facilitystore "github.com/m04kA/RCM-BookingService/internal/infra/storage/facility"
	"github.com/m04kA/RCM-BookingService/internal/integrations/residentservice"
	"github.com/m04kA/RCM-BookingService/internal/service/facilities/models"
)

type Service struct {
	repo            FacilityRepository
	residentService ResidentServiceClient
	log             Logger
}

func NewService(repo FacilityRepository, residentService ResidentServiceClient, log Logger) *Service {
	return &Service{
		repo:            repo,
		residentService: residentService,
		log:             log,
	}
}

// List возвращает все объекты сообщества
func (s *Service) List(ctx context.Context, communityID int64) ([]*domain.Facility, error) {
	facilities, err := s.repo.ListByCommunity(ctx, communityID)
	if err != nil {
		s.log.Error("List: failed to list facilities: community_id=%d: %v", communityID, err)
		return nil, fmt.Errorf("%w: failed to list facilities: %v", ErrInternal, err)
	}
	return facilities, nil
}

// GetByID возвращает объект по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	facility, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilitystore.ErrFacilityNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrFacilityNotFound, id)
		}
		s.log.Error("GetByID: failed to get facility: facility_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	return facility, nil
}

// Create создаёт объект инфраструктуры.
// Доступно только администраторам сообщества.
func (s *Service) Create(ctx context.Context, userID int64, input models.CreateInput) (*domain.Facility, error) {
	if err := s.requireAdmin(ctx, userID, input.CommunityID); err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validateLimits(input.SlotMins, input.Capacity); err != nil {
		return nil, err
	}
	s.warnOnMalformedHours(input.OperatingHours, input.Name)

	facility := &domain.Facility{
		CommunityID:    input.CommunityID,
		Name:           input.Name,
		FacilityType:   input.FacilityType,
		OperatingHours: input.OperatingHours,
		SlotMins:       input.SlotMins,
		Capacity:       input.Capacity,
	}

	created, err := s.repo.Create(ctx, facility)
	if err != nil {
		s.log.Error("Create: failed to create facility: community_id=%d: %v", input.CommunityID, err)
		return nil, fmt.Errorf("%w: failed to create facility: %v", ErrInternal, err)
	}

	s.log.Info("Create: facility created: facility_id=%d, community_id=%d, name=%s", created.ID, created.CommunityID, created.Name)
	return created, nil
}

// Update частично обновляет объект.
// Доступно только администраторам сообщества объекта.
func (s *Service) Update(ctx context.Context, userID, facilityID int64, input models.UpdateInput) (*domain.Facility, error) {
	facility, err := s.GetByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAdmin(ctx, userID, facility.CommunityID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		facility.Name = *input.Name
	}
	if input.FacilityType != nil {
		facility.FacilityType = *input.FacilityType
	}
	if input.OperatingHours != nil {
		facility.OperatingHours = input.OperatingHours
	}
	if input.SlotMins != nil {
		facility.SlotMins = input.SlotMins
	}
	if input.Capacity != nil {
		facility.Capacity = input.Capacity
	}

	if err := validateLimits(facility.SlotMins, facility.Capacity); err != nil {
		return nil, err
	}
	s.warnOnMalformedHours(facility.OperatingHours, facility.Name)

	updated, err := s.repo.Update(ctx, facilityID, facility)
	if err != nil {
		if errors.Is(err, facilitystore.ErrFacilityNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrFacilityNotFound, facilityID)
		}
		s.log.Error("Update: failed to update facility: facility_id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: failed to update facility: %v", ErrInternal, err)
	}

	s.log.Info("Update: facility updated: facility_id=%d", facilityID)
	return updated, nil
}

// validateLimits проверяет границы настроек объекта
func validateLimits(slotMins, capacity *int) error {
	if slotMins != nil && (*slotMins < domain.MinSlotMinutes || *slotMins > domain.MaxSlotMinutes) {
		return fmt.Errorf("%w: slot_minutes must be between %d and %d", ErrInvalidInput, domain.MinSlotMinutes, domain.MaxSlotMinutes)
	}
	if capacity != nil && (*capacity < domain.MinCapacity || *capacity > domain.MaxCapacity) {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}
	return nil
}

// warnOnMalformedHours логирует предупреждение о нерабочем расписании.
// Некорректное расписание не отклоняется: объект просто не даёт слотов.
func (s *Service) warnOnMalformedHours(operatingHours *string, name string) {
	if operatingHours == nil {
		return
	}
	if !domain.ValidOperatingHours(*operatingHours) {
		s.log.Warn("facility %q has malformed operating hours %q, it will produce no bookable slots", name, *operatingHours)
	}
}

// requireAdmin проверяет права администратора сообщества
func (s *Service) requireAdmin(ctx context.Context, userID, communityID int64) error {
	resident, err := s.residentService.GetResident(ctx, userID)
	if err != nil {
		if errors.Is(err, residentservice.ErrResidentNotFound) {
			return fmt.Errorf("%w: user_id %d", ErrUserNotFound, userID)
		}
		s.log.Error("requireAdmin: failed to get resident: user_id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get resident: %v", ErrInternal, err)
	}

	if !resident.IsAdmin() || !resident.BelongsTo(communityID) {
		s.log.Warn("requireAdmin: access denied: user_id=%d, community_id=%d", userID, communityID)
		return fmt.Errorf("%w: community %d", ErrAccessDenied, communityID)
	}

	return nil
}
