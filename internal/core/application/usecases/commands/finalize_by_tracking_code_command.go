package commands

import (
	"errors"
	"fmt"
	"strings"

	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrFinalizeByTrackingCodeCommandIsNotConstructed = errors.New(
	"FinalizeByTrackingCodeCommand must be created via NewFinalizeByTrackingCodeCommand constructor",
)

// FinalizeByTrackingCodeCommand force-sets a terminal status on every
// shipment carrying the tracking code. An empty terminal means Delivered.
type FinalizeByTrackingCodeCommand struct { //nolint:recvcheck //using for validation
	trackingCode shipment.TrackingCode
	terminal     shipment.Status
	actor        string

	guard guard.ConstructorGuard
}

func NewFinalizeByTrackingCodeCommand(
	trackingCode string,
	terminal string,
	actor string,
) (FinalizeByTrackingCodeCommand, error) {
	cmd := FinalizeByTrackingCodeCommand{
		terminal: shipment.Delivered,
		guard:    guard.NewConstructorGuard(),
	}

	code, codeErr := shipment.ParseTrackingCode(trackingCode)

	var statusErr error
	if strings.TrimSpace(terminal) != "" {
		cmd.terminal, statusErr = shipment.ParseStatus(terminal)
		if statusErr == nil && !cmd.terminal.IsTerminal() {
			statusErr = errs.NewValueIsInvalidErrorWithCause(
				"status", fmt.Errorf("%s is not a terminal status", cmd.terminal))
		}
	}

	actor = strings.TrimSpace(actor)
	var actorErr error
	if actor == "" {
		actorErr = shipment.ErrActorIsRequired
	}

	if err := errors.Join(codeErr, statusErr, actorErr); err != nil {
		return FinalizeByTrackingCodeCommand{}, err
	}

	cmd.trackingCode = code
	cmd.actor = actor
	return cmd, nil
}

func (c FinalizeByTrackingCodeCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeByTrackingCodeCommandIsNotConstructed)
}

func (c FinalizeByTrackingCodeCommand) TrackingCode() shipment.TrackingCode {
	return c.trackingCode
}

func (c FinalizeByTrackingCodeCommand) Terminal() shipment.Status {
	return c.terminal
}

func (c FinalizeByTrackingCodeCommand) Actor() string {
	return c.actor
}
