package courier

import (
	"errors"
	"strings"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier represents a delivery courier that shipments can be assigned to.
// It is an aggregate root with a small surface: identity, a display name and
// an availability flag consulted by the dispatcher.
//
// Business rules:
//   - Courier must have a valid UUID and a non-empty name
//   - A new courier starts available
//   - Only available couriers take part in assignment
//
// Example usage:
//
//	c, err := NewCourier(kernel.NewUUID(), "Jane Doe")
//	if err != nil {
//	    // Handle construction error
//	}
//	// c can now be offered to the dispatcher
type Courier struct {
	// id uniquely identifies the courier and is also the subject of its access token
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// available marks couriers that accept new shipments
	available bool
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new available Courier.
//
// Parameters:
//   - id: Unique identifier for the courier (must be valid UUID)
//   - name: Human-readable name (must be non-empty after trimming)
//
// Returns:
//   - *Courier: A fully initialized courier
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	return RestoreCourier(id, name, true)
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// keeping the stored availability flag.
//
// Example:
//
//	c, err := RestoreCourier(courierID, "Alice Johnson", false)
//	if err != nil {
//	    return fmt.Errorf("restoration failed: %w", err)
//	}
func RestoreCourier(id kernel.UUID, name string, available bool) (*Courier, error) {
	courier := &Courier{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed.
// The zero value of Courier is invalid and will fail this validation.
//
// Returns:
//   - error: ErrCourierIsNotConstructed if improperly initialized, nil if valid
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// IsAvailable reports whether the courier accepts new shipments.
func (c *Courier) IsAvailable() bool {
	return c.available
}

// MakeAvailable puts the courier back into the assignment pool.
func (c *Courier) MakeAvailable() {
	c.available = true
}

// MakeUnavailable removes the courier from the assignment pool.
// Shipments already assigned to the courier are not affected.
func (c *Courier) MakeUnavailable() {
	c.available = false
}

// setID sets the courier's unique identifier with validation.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the courier's name with validation.
func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
