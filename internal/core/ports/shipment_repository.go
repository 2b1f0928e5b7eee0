package ports

import (
	"context"
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
)

// ErrTrackingCodeIsTaken is returned by ShipmentRepository.Add on a duplicate tracking code.
var ErrTrackingCodeIsTaken = errors.New("tracking code is already taken")

// UnreadableShipmentError reports a stored shipment that cannot be restored
// into the domain model.
type UnreadableShipmentError struct {
	ID    kernel.UUID
	Cause error
}

func (e *UnreadableShipmentError) Error() string {
	return fmt.Sprintf("shipment %s cannot be restored: %v", e.ID, e.Cause)
}

func (e *UnreadableShipmentError) Unwrap() error {
	return e.Cause
}

// ShipmentRepository defines the persistence contract for shipment aggregates.
// The status history is stored alongside the shipment and written in the same transaction.
type ShipmentRepository interface {
	// Add persists a new shipment together with its initial history.
	// A tracking code that is already taken yields ErrTrackingCodeIsTaken.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists status, courier and any history entries appended since the
	// shipment was loaded. The write succeeds only if the stored version still
	// matches; otherwise it returns errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its internal id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingCode retrieves the shipment carrying code.
	// Returns errs.ObjectNotFoundError when there is none.
	GetByTrackingCode(ctx context.Context, code shipment.TrackingCode) (*shipment.Shipment, error)

	// GetAllByTrackingCode returns every shipment carrying code, oldest first.
	// Used by finalize-by-code; more than one result means codes collided.
	GetAllByTrackingCode(ctx context.Context, code shipment.TrackingCode) ([]*shipment.Shipment, error)

	// GetFirstUnassigned returns the oldest non-terminal shipment without a
	// courier, ignoring the ids in skip. Returns errs.ObjectNotFoundError when
	// none is left and *UnreadableShipmentError when the row cannot be restored.
	GetFirstUnassigned(ctx context.Context, skip []kernel.UUID) (*shipment.Shipment, error)
}
