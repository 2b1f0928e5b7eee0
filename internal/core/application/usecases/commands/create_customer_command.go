package commands

import (
	"errors"

	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer account. The customer id is the
// subject the customer authenticates with.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customer *customer.Customer

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand validates name and email by building the aggregate up front.
func NewCreateCustomerCommand(name, email string) (CreateCustomerCommand, error) {
	c, err := customer.NewCustomer(kernel.NewUUID(), name, email)
	if err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{customer: c, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customer.ID()
}

func (c CreateCustomerCommand) Name() string {
	return c.customer.Name()
}

func (c CreateCustomerCommand) Email() string {
	return c.customer.Email()
}
