package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrAssignPendingCourierCommandIsNotConstructed = errors.New(
	"AssignPendingCourierCommand must be created via NewAssignPendingCourierCommand constructor",
)

// AssignPendingCourierCommand triggers assignment of an available courier to
// the oldest shipment that was registered without one. Shipments listed in
// skip are left alone; the assignment job uses it for shipments that already
// failed to be assigned.
//
// Example:
//
//	cmd := NewAssignPendingCourierCommand()
//	handler := NewAssignPendingCourierCommandHandler(uowFactory, dispatcher)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No shipments to assign or no available couriers: %v", err)
//	}
type AssignPendingCourierCommand struct {
	skip []kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignPendingCourierCommand(skip ...kernel.UUID) AssignPendingCourierCommand {
	return AssignPendingCourierCommand{
		skip:  skip,
		guard: guard.NewConstructorGuard(),
	}
}

func (c AssignPendingCourierCommand) Skip() []kernel.UUID {
	return c.skip
}

// Validate ensures the command was created through the constructor.
func (c *AssignPendingCourierCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPendingCourierCommandIsNotConstructed,
	)
}
