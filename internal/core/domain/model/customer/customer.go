package customer

import (
	"errors"
	"net/mail"
	"strings"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
	// ErrCustomerIsDisabled is returned when a disabled account tries to register a shipment.
	ErrCustomerIsDisabled = errors.New("customer account is disabled")
)

// Customer is an account that registers shipments. Administrators may
// disable it, which blocks new registrations but leaves existing shipments alone.
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	enabled bool
	guard   guard.ConstructorGuard
}

// NewCustomer creates an enabled customer.
func NewCustomer(id kernel.UUID, name, email string) (*Customer, error) {
	return RestoreCustomer(id, name, email, true)
}

func RestoreCustomer(id kernel.UUID, name, email string, enabled bool) (*Customer, error) {
	c := &Customer{
		id:      id,
		enabled: enabled,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID { return c.id }
func (c *Customer) Name() string    { return c.name }
func (c *Customer) Email() string   { return c.email }
func (c *Customer) IsEnabled() bool { return c.enabled }

// SetEnabled toggles the account flag and reports whether it changed.
func (c *Customer) SetEnabled(enabled bool) bool {
	if c.enabled == enabled {
		return false
	}
	c.enabled = enabled
	return true
}

// CanRegisterShipments returns ErrCustomerIsDisabled for disabled accounts.
func (c *Customer) CanRegisterShipments() error {
	if !c.enabled {
		return ErrCustomerIsDisabled
	}
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = strings.ToLower(addr.Address)
	return nil
}
