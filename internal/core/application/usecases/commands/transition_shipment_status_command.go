package commands

import (
	"errors"
	"strings"

	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/guard"
)

var ErrTransitionShipmentStatusCommandIsNotConstructed = errors.New(
	"TransitionShipmentStatusCommand must be created via NewTransitionShipmentStatusCommand constructor",
)

// TransitionShipmentStatusCommand moves a shipment, found by tracking code,
// to the target status on behalf of actor.
type TransitionShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	trackingCode shipment.TrackingCode
	target       shipment.Status
	actor        string

	guard guard.ConstructorGuard
}

func NewTransitionShipmentStatusCommand(
	trackingCode string,
	target string,
	actor string,
) (TransitionShipmentStatusCommand, error) {
	cmd := TransitionShipmentStatusCommand{guard: guard.NewConstructorGuard()}

	code, codeErr := shipment.ParseTrackingCode(trackingCode)
	status, statusErr := shipment.ParseStatus(target)
	actor = strings.TrimSpace(actor)
	var actorErr error
	if actor == "" {
		actorErr = shipment.ErrActorIsRequired
	}

	if err := errors.Join(codeErr, statusErr, actorErr); err != nil {
		return TransitionShipmentStatusCommand{}, err
	}

	cmd.trackingCode = code
	cmd.target = status
	cmd.actor = actor
	return cmd, nil
}

func (c TransitionShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentStatusCommandIsNotConstructed)
}

func (c TransitionShipmentStatusCommand) TrackingCode() shipment.TrackingCode {
	return c.trackingCode
}

func (c TransitionShipmentStatusCommand) Target() shipment.Status {
	return c.target
}

func (c TransitionShipmentStatusCommand) Actor() string {
	return c.actor
}
