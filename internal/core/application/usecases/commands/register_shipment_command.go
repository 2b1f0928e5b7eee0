package commands

import (
	"errors"
	"strings"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrRegisterShipmentCommandIsNotConstructed = errors.New(
	"RegisterShipmentCommand must be created via NewRegisterShipmentCommand constructor",
)

// RegisterShipmentCommand represents a request to register a new shipment.
// The quote request is validated when the command is built, so an invalid
// request never reaches the geocoding or routing services.
//
// Example:
//
//	sender, _ := shipment.NewSender("Ana Pérez", "3001234567")
//	recipient, _ := shipment.NewRecipient("Luis Gómez", "3117654321", "Calle 10 # 5-20")
//	cmd, err := NewRegisterShipmentCommand(actor, sender, recipient, request)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	registered, err := handler.Handle(ctx, cmd)
//	fmt.Println(registered.TrackingCode())
type RegisterShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      string
	sender     shipment.Party
	recipient  shipment.Party
	request    quote.Request

	guard guard.ConstructorGuard
}

// NewRegisterShipmentCommand generates the shipment id and validates every field.
// actor is the registering user and becomes the first history entry's actor.
func NewRegisterShipmentCommand(
	actor string,
	sender shipment.Party,
	recipient shipment.Party,
	request quote.Request,
) (RegisterShipmentCommand, error) {
	cmd := RegisterShipmentCommand{
		shipmentID: kernel.NewUUID(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setSender(sender),
		cmd.setRecipient(recipient),
		cmd.setRequest(request),
	); err != nil {
		return RegisterShipmentCommand{}, err
	}

	return cmd, nil
}

func (c RegisterShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShipmentCommandIsNotConstructed)
}

func (c RegisterShipmentCommand) ShipmentID() kernel.UUID   { return c.shipmentID }
func (c RegisterShipmentCommand) Actor() string             { return c.actor }
func (c RegisterShipmentCommand) Sender() shipment.Party    { return c.sender }
func (c RegisterShipmentCommand) Recipient() shipment.Party { return c.recipient }
func (c RegisterShipmentCommand) Request() quote.Request    { return c.request }

func (c *RegisterShipmentCommand) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return shipment.ErrActorIsRequired
	}
	c.actor = actor
	return nil
}

func (c *RegisterShipmentCommand) setSender(sender shipment.Party) error {
	if sender.Name() == "" || sender.Phone() == "" {
		return errs.NewValueIsRequiredError("sender")
	}
	c.sender = sender
	return nil
}

func (c *RegisterShipmentCommand) setRecipient(recipient shipment.Party) error {
	if recipient.Name() == "" || recipient.Phone() == "" || recipient.Address() == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	c.recipient = recipient
	return nil
}

func (c *RegisterShipmentCommand) setRequest(request quote.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}
	c.request = request
	return nil
}
