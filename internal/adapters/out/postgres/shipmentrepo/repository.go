package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"parcel/internal/adapters/out/postgres/pgerr"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the shipment row and its history. The insert runs in a nested
// transaction so that a duplicate tracking code rolls back to a savepoint and
// leaves the caller's transaction usable for another attempt.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if pgerr.IsUniqueViolation(err, TrackingCodeIndex) {
		return ports.ErrTrackingCodeIsTaken
	}
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status, courier and last-updated time guarded by the version the
// aggregate was loaded with, then appends the unsaved history entries.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	unsaved := aggregate.UnsavedHistory()
	offset := len(aggregate.History()) - len(unsaved)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ShipmentDTO{}).
			Where("id = ? AND version = ?", dto.ID, dto.Version).
			Updates(map[string]any{
				"status":       dto.Status,
				"courier_id":   dto.CourierID,
				"last_updated": dto.LastUpdated,
				"version":      gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return r.missingOrStale(tx, aggregate.ID())
		}

		if len(unsaved) == 0 {
			return nil
		}
		rows := historyFromDomain(dto.ID, unsaved, offset)
		return tx.Create(&rows).Error
	})
	if pgerr.IsUniqueViolation(err, "") {
		// another writer appended the same history position
		return errs.NewVersionIsInvalidError("shipment", err)
	}
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) missingOrStale(tx *gorm.DB, id kernel.UUID) error {
	var count int64
	if err := tx.Model(&ShipmentDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause("shipment")
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.withHistory(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode retrieves the shipment carrying code.
func (r *GormShipmentRepository) GetByTrackingCode(
	ctx context.Context,
	code shipment.TrackingCode,
) (*shipment.Shipment, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.withHistory(ctx).First(&dto, "tracking_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByTrackingCode returns every shipment carrying code, oldest first.
func (r *GormShipmentRepository) GetAllByTrackingCode(
	ctx context.Context,
	code shipment.TrackingCode,
) ([]*shipment.Shipment, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.withHistory(ctx).
		Where("tracking_code = ?", code.String()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetFirstUnassigned locks and returns the oldest active shipment without a
// courier. Rows locked by another transaction and ids in skip are passed over.
func (r *GormShipmentRepository) GetFirstUnassigned(ctx context.Context, skip []kernel.UUID) (*shipment.Shipment, error) {
	query := r.withHistory(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("courier_id IS NULL AND status NOT IN ?", terminalStatuses())
	if len(skip) > 0 {
		ids := make([]uuid.UUID, len(skip))
		for i, id := range skip {
			ids[i] = id.Bytes()
		}
		query = query.Where("id NOT IN ?", ids)
	}

	var dto ShipmentDTO
	err := query.Order("created_at").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", "first unassigned")
		}
		return nil, err
	}

	s, err := toDomain(dto)
	if err != nil {
		id, _ := kernel.UUIDFromBytes(dto.ID[:])
		return nil, &ports.UnreadableShipmentError{ID: id, Cause: err}
	}
	return s, nil
}

func (r *GormShipmentRepository) withHistory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	})
}

func terminalStatuses() []int {
	return []int{int(shipment.Delivered), int(shipment.Cancelled)}
}

func toDomainAll(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("restore shipment %s: %w", dto.TrackingCode, err)
		}
		shipments = append(shipments, s)
	}
	return shipments, nil
}
