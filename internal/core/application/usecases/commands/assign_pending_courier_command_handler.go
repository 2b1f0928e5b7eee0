package commands

import (
	"context"
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/services"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"
)

// ErrNoShipmentToAssign is returned when every active shipment already has a courier.
var ErrNoShipmentToAssign = errors.New("no shipment waiting for a courier")

// ShipmentNotAssignableError names a shipment that failed for reasons of its
// own, such as a stored row that cannot be restored. Retrying it will fail
// again, so callers should pass its id in the next command's skip list.
type ShipmentNotAssignableError struct {
	ShipmentID kernel.UUID
	Err        error
}

func (e *ShipmentNotAssignableError) Error() string {
	return fmt.Sprintf("shipment %s cannot be assigned: %v", e.ShipmentID, e.Err)
}

func (e *ShipmentNotAssignableError) Unwrap() error {
	return e.Err
}

// AssignPendingCourierCommandHandler picks the oldest unassigned shipment and
// assigns it a random available courier.
//
// Example:
//
//	handler := NewAssignPendingCourierCommandHandler(uowFactory, services.NewCourierDispatcher(nil))
//	cmd := NewAssignPendingCourierCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoShipmentToAssign):
//	    log.Println("Nothing pending")
//	case errors.Is(err, services.ErrNoCouriersAvailable):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignPendingCourierCommandHandler struct {
	uowFactory UoWFactory
	dispatcher CourierDispatcher
}

// NewAssignPendingCourierCommandHandler creates a handler for deferred courier assignment.
func NewAssignPendingCourierCommandHandler(
	uowFactory UoWFactory,
	dispatcher CourierDispatcher,
) AssignPendingCourierCommandHandler {
	return AssignPendingCourierCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle returns ErrNoShipmentToAssign or services.ErrNoCouriersAvailable for the
// expected idle conditions and *ShipmentNotAssignableError when the picked
// shipment itself is the problem.
func (h AssignPendingCourierCommandHandler) Handle(ctx context.Context, command AssignPendingCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	courierRepo := uow.CourierRepository()

	pending, err := shipmentRepo.GetFirstUnassigned(ctx, command.Skip())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoShipmentToAssign
	}
	var unreadable *ports.UnreadableShipmentError
	if errors.As(err, &unreadable) {
		return &ShipmentNotAssignableError{ShipmentID: unreadable.ID, Err: err}
	}
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	if _, err = h.dispatcher.Dispatch(pending, couriers); err != nil {
		if errors.Is(err, services.ErrNoCouriersAvailable) {
			return err
		}
		return &ShipmentNotAssignableError{ShipmentID: pending.ID(), Err: err}
	}

	if err = shipmentRepo.Update(ctx, pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
