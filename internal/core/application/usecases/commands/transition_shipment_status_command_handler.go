package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/shipment"
)

// TransitionShipmentStatusCommandHandler applies one status transition and
// appends the matching history entry. Illegal transitions fail with
// errs.TransitionIsInvalidError; a concurrent update of the same shipment
// fails with errs.VersionIsInvalidError and nothing is written.
type TransitionShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        func() time.Time
}

func NewTransitionShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) TransitionShipmentStatusCommandHandler {
	return TransitionShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h TransitionShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionShipmentStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return nil, err
	}

	if err = s.Transition(cmd.Target(), cmd.Actor(), h.now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
