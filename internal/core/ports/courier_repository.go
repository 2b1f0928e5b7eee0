// Package ports defines the contracts between the domain and infrastructure:
// repositories, the unit of work, and the geocoding and routing collaborators.
package ports

import (
	"context"

	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no courier has that id.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves the pool the dispatcher chooses from.
	// An empty pool is not an error.
	//
	// Example:
	//   pool, err := repo.GetAllAvailable(ctx)
	//   if err != nil {
	//       return fmt.Errorf("failed to get available couriers: %w", err)
	//   }
	//   picked, err := dispatcher.Pick(pool)
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
