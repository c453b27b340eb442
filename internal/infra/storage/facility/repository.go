package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RCM-BookingService/internal/domain"
	"github.com/m04kA/RCM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RCM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с объектами инфраструктуры
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var selectColumns = []string{
	"id",
	"community_id",
	"name",
	"facility_type",
	"operating_hours",
	"slot_minutes",
	"capacity",
	"created_at",
	"updated_at",
}

// Create создает новый объект
func (r *Repository) Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("facilities").
		Columns(
			"community_id",
			"name",
			"facility_type",
			"operating_hours",
			"slot_minutes",
			"capacity",
		).
		Values(
			facility.CommunityID,
			facility.Name,
			facility.FacilityType,
			facility.OperatingHours,
			facility.SlotMins,
			facility.Capacity,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&facility.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	return facility, nil
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var facility domain.Facility
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&facility.ID,
		&facility.CommunityID,
		&facility.Name,
		&facility.FacilityType,
		&facility.OperatingHours,
		&facility.SlotMins,
		&facility.Capacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	return &facility, nil
}

// ListByCommunity получает все объекты сообщества
func (r *Repository) ListByCommunity(ctx context.Context, communityID int64) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("facilities").
		Where(squirrel.Eq{"community_id": communityID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCommunity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCommunity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		var facility domain.Facility
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&facility.ID,
			&facility.CommunityID,
			&facility.Name,
			&facility.FacilityType,
			&facility.OperatingHours,
			&facility.SlotMins,
			&facility.Capacity,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCommunity - scan row: %v", ErrScanRow, err)
		}

		facility.CreatedAt = createdAt.Time
		facility.UpdatedAt = updatedAt.Time

		facilities = append(facilities, &facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCommunity - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// Update обновляет параметры объекта
func (r *Repository) Update(ctx context.Context, id int64, facility *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("facilities").
		Set("name", facility.Name).
		Set("facility_type", facility.FacilityType).
		Set("operating_hours", facility.OperatingHours).
		Set("slot_minutes", facility.SlotMins).
		Set("capacity", facility.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	facility.ID = id
	facility.UpdatedAt = updatedAt.Time

	return facility, nil
}
