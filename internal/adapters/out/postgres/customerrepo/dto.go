// Package customerrepo persists customer accounts.
package customerrepo

import (
	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmailIndex is the unique index on customer e-mail addresses.
const EmailIndex = "idx_customers_email"

type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Email   string    `gorm:"type:varchar(320);not null;uniqueIndex:idx_customers_email"`
	Enabled bool      `gorm:"not null;default:true"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().Bytes(),
		Name:    c.Name(),
		Email:   c.Email(),
		Enabled: c.IsEnabled(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Enabled)
}
