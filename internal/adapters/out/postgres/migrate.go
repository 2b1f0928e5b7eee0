package postgres

import (
	"parcel/internal/adapters/out/postgres/courierrepo"
	"parcel/internal/adapters/out/postgres/customerrepo"
	"parcel/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&courierrepo.CourierDTO{},
		&customerrepo.CustomerDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.StatusHistoryDTO{},
	}
}

// Migrate creates or updates the schema for all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
