package commands

import (
	"context"
	"errors"
	"time"

	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"
)

// MaxTrackingCodeAttempts bounds tracking code generation on collisions.
const MaxTrackingCodeAttempts = 5

// ErrTrackingCodeExhausted is returned when every generated tracking code was already taken.
var ErrTrackingCodeExhausted = errors.New("could not allocate a unique tracking code")

type (
	// Quoter prices a request end to end, surcharge included.
	Quoter interface {
		Quote(ctx context.Context, req quote.Request) (quote.Quote, error)
	}

	// TrackingCodeGenerator produces candidate tracking codes.
	TrackingCodeGenerator interface {
		Generate() (shipment.TrackingCode, error)
	}

	// CourierDispatcher assigns a shipment to a courier from the pool.
	CourierDispatcher interface {
		Dispatch(s *shipment.Shipment, couriers []*courier.Courier) (*courier.Courier, error)
	}
)

// RegisterShipmentCommandHandler prices a shipment request, allocates a
// tracking code and persists the shipment in PendingPayment.
//
// The courier stage is optional: with a nil dispatcher shipments are stored
// unassigned and picked up later by AssignPendingCourierCommandHandler.
//
// Example:
//
//	handler := NewRegisterShipmentCommandHandler(uowFactory, quoter, generator, nil)
//	registered, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, customer.ErrCustomerIsDisabled):
//	    // account blocked by an administrator
//	case errors.Is(err, ErrTrackingCodeExhausted):
//	    // try again later
//	}
type RegisterShipmentCommandHandler struct {
	uowFactory UoWFactory
	quoter     Quoter
	codes      TrackingCodeGenerator
	dispatcher CourierDispatcher
	now        func() time.Time
}

func NewRegisterShipmentCommandHandler(
	uowFactory UoWFactory,
	quoter Quoter,
	codes TrackingCodeGenerator,
	dispatcher CourierDispatcher,
) RegisterShipmentCommandHandler {
	return RegisterShipmentCommandHandler{
		uowFactory: uowFactory,
		quoter:     quoter,
		codes:      codes,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Handle quotes the request before opening the transaction, so upstream
// latency never holds database locks. Shipment, history and courier
// assignment are committed together or not at all.
func (h RegisterShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	price, err := h.quoter.Quote(ctx, cmd.Request())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = checkCustomer(ctx, uow, cmd.Actor()); err != nil {
		return nil, err
	}

	var couriers []*courier.Courier
	if h.dispatcher != nil {
		couriers, err = uow.CourierRepository().GetAllAvailable(ctx)
		if err != nil {
			return nil, err
		}
	}

	shipmentRepo := uow.ShipmentRepository()
	for range MaxTrackingCodeAttempts {
		registered, buildErr := h.build(cmd, price, couriers)
		if buildErr != nil {
			return nil, buildErr
		}

		err = shipmentRepo.Add(ctx, registered)
		if errors.Is(err, ports.ErrTrackingCodeIsTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return registered, nil
	}

	return nil, ErrTrackingCodeExhausted
}

func (h RegisterShipmentCommandHandler) build(
	cmd RegisterShipmentCommand,
	price quote.Quote,
	couriers []*courier.Courier,
) (*shipment.Shipment, error) {
	code, err := h.codes.Generate()
	if err != nil {
		return nil, err
	}

	registered, err := shipment.NewShipment(
		cmd.ShipmentID(), code, cmd.Sender(), cmd.Recipient(), cmd.Request(), price, cmd.Actor(), h.now(),
	)
	if err != nil {
		return nil, err
	}

	if h.dispatcher != nil {
		if _, err = h.dispatcher.Dispatch(registered, couriers); err != nil {
			return nil, err
		}
	}

	return registered, nil
}

// checkCustomer blocks disabled customer accounts. Actors that are not
// customer ids, or have no customer record, are allowed.
func checkCustomer(ctx context.Context, uow CustomerRepoFactory, actor string) error {
	id, err := kernel.UUIDFromString(actor)
	if err != nil {
		return nil //nolint:nilerr // non-uuid subjects are not customer accounts
	}

	account, err := uow.CustomerRepository().Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return account.CanRegisterShipments()
}
