package courierrepo

import (
	"context"
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCourierRepository stores couriers in the couriers table. Every write is
// reported to the tracker so the unit of work knows what it touched.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{db: db, tracker: tracker}
}

func (r *GormCourierRepository) Add(ctx context.Context, agent *courier.Courier) error {
	if err := agent.Validate(); err != nil {
		return err
	}

	row := fromDomain(agent)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert courier: %w", err)
	}

	r.tracker.TrackAggregate(agent.ID(), agent)
	return nil
}

// Update overwrites every column, so a courier switched to unavailable is
// persisted even though false is the zero value.
func (r *GormCourierRepository) Update(ctx context.Context, agent *courier.Courier) error {
	if err := agent.Validate(); err != nil {
		return err
	}

	row := fromDomain(agent)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", row.ID).
		Select("*").
		Updates(&row)
	if result.Error != nil {
		return fmt.Errorf("update courier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", agent.ID().String())
	}

	r.tracker.TrackAggregate(agent.ID(), agent)
	return nil
}

func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var row CourierDTO
	err := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errs.NewObjectNotFoundError("courier", id.String())
	case err != nil:
		return nil, fmt.Errorf("select courier: %w", err)
	}

	return toDomain(row)
}

// GetAllAvailable returns the assignment pool: every available courier,
// ordered by name. Couriers may carry several shipments at once, so
// availability is the only filter.
func (r *GormCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	var rows []CourierDTO
	if err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("name").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select available couriers: %w", err)
	}

	pool := make([]*courier.Courier, 0, len(rows))
	for _, row := range rows {
		agent, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		pool = append(pool, agent)
	}
	return pool, nil
}
