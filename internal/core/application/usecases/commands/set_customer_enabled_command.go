package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrSetCustomerEnabledCommandIsNotConstructed = errors.New(
	"SetCustomerEnabledCommand must be created via NewSetCustomerEnabledCommand constructor",
)

// SetCustomerEnabledCommand enables or disables a customer account.
type SetCustomerEnabledCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	enabled    bool

	guard guard.ConstructorGuard
}

func NewSetCustomerEnabledCommand(customerID kernel.UUID, enabled bool) (SetCustomerEnabledCommand, error) {
	if err := customerID.Validate(); err != nil {
		return SetCustomerEnabledCommand{}, err
	}

	return SetCustomerEnabledCommand{
		customerID: customerID,
		enabled:    enabled,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetCustomerEnabledCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerEnabledCommandIsNotConstructed)
}

func (c SetCustomerEnabledCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c SetCustomerEnabledCommand) Enabled() bool {
	return c.enabled
}
