package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command; instances are
// never shared between requests.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one database transaction. Repositories obtained from it
// write inside that transaction, so a shipment, its history and a courier
// assignment become visible together on Commit or not at all.
//
// Handlers defer Rollback unconditionally and ignore its error; after a
// successful Commit there is nothing left to roll back.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ShipmentRepository() ShipmentRepository
	CourierRepository() CourierRepository
	CustomerRepository() CustomerRepository
}
