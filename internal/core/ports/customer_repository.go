package ports

import (
	"context"

	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer accounts.
type CustomerRepository interface {
	Add(ctx context.Context, customer *customer.Customer) error
	Update(ctx context.Context, customer *customer.Customer) error
	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
