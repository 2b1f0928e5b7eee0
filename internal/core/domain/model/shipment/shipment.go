package shipment

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")
	ErrCourierAlreadyAssigned   = errs.NewValueIsInvalidErrorWithCause(
		"courier", errors.New("shipment already has a courier"))
	ErrHistoryIsInconsistent = errs.NewValueIsInvalidErrorWithCause(
		"status history", errors.New("history must be non-empty, ordered, and end with the current status"))
)

// Shipment is the aggregate root for a registered parcel.
//
// Invariants:
//   - id and tracking code never change after creation
//   - history is non-empty, ordered by timestamp, and its last entry carries status
//   - a terminal shipment accepts no further transitions or courier assignment
//
// version is the optimistic concurrency token read from storage.
type Shipment struct {
	id            kernel.UUID
	trackingCode  TrackingCode
	sender        Party
	recipient     Party
	origin        kernel.Locality
	destination   kernel.Locality
	class         quote.ShippingClass
	dimensions    quote.Dimensions
	weight        float64
	declaredValue float64
	cost          int64
	insurance     int64
	courierID     *kernel.UUID
	createdBy     string
	createdAt     time.Time
	lastUpdated   time.Time
	status        Status
	history       []HistoryEntry
	version       int64

	// persistedHistory is the number of history entries already stored.
	persistedHistory int

	guard guard.ConstructorGuard
}

// NewShipment registers a shipment from a validated quote request and its price.
// The shipment starts in PendingPayment with a single history entry by createdBy.
func NewShipment(
	id kernel.UUID,
	code TrackingCode,
	sender Party,
	recipient Party,
	request quote.Request,
	price quote.Quote,
	createdBy string,
	now time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		code.Validate(),
		request.Validate(),
	); err != nil {
		return nil, err
	}

	entry, err := NewHistoryEntry(PendingPayment, now, createdBy)
	if err != nil {
		return nil, err
	}

	return &Shipment{
		id:            id,
		trackingCode:  code,
		sender:        sender,
		recipient:     recipient,
		origin:        request.Origin(),
		destination:   request.Destination(),
		class:         request.Class(),
		dimensions:    request.Dimensions(),
		weight:        request.Weight(),
		declaredValue: request.DeclaredValue(),
		cost:          price.Cost(),
		insurance:     price.Insurance(),
		createdBy:     entry.Actor(),
		createdAt:     entry.At(),
		lastUpdated:   entry.At(),
		status:        PendingPayment,
		history:       []HistoryEntry{entry},
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Snapshot is the persisted form of a Shipment used by RestoreShipment.
type Snapshot struct {
	ID            kernel.UUID
	TrackingCode  TrackingCode
	Sender        Party
	Recipient     Party
	Origin        kernel.Locality
	Destination   kernel.Locality
	Class         quote.ShippingClass
	Dimensions    quote.Dimensions
	Weight        float64
	DeclaredValue float64
	Cost          int64
	Insurance     int64
	CourierID     *kernel.UUID
	CreatedBy     string
	CreatedAt     time.Time
	LastUpdated   time.Time
	Status        Status
	History       []HistoryEntry
	Version       int64
}

// RestoreShipment rebuilds a shipment from storage and checks its invariants.
func RestoreShipment(s Snapshot) (*Shipment, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.TrackingCode.Validate(),
		s.Origin.Validate(),
		s.Destination.Validate(),
		s.Dimensions.Validate(),
		s.Class.Validate(),
		s.Status.Validate(),
		validateHistory(s.History, s.Status),
	); err != nil {
		return nil, err
	}

	history := make([]HistoryEntry, len(s.History))
	copy(history, s.History)

	return &Shipment{
		id:               s.ID,
		trackingCode:     s.TrackingCode,
		sender:           s.Sender,
		recipient:        s.Recipient,
		origin:           s.Origin,
		destination:      s.Destination,
		class:            s.Class,
		dimensions:       s.Dimensions,
		weight:           s.Weight,
		declaredValue:    s.DeclaredValue,
		cost:             s.Cost,
		insurance:        s.Insurance,
		courierID:        s.CourierID,
		createdBy:        s.CreatedBy,
		createdAt:        s.CreatedAt,
		lastUpdated:      s.LastUpdated,
		status:           s.Status,
		history:          history,
		version:          s.Version,
		persistedHistory: len(history),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID              { return s.id }
func (s *Shipment) TrackingCode() TrackingCode   { return s.trackingCode }
func (s *Shipment) Sender() Party                { return s.sender }
func (s *Shipment) Recipient() Party             { return s.recipient }
func (s *Shipment) Origin() kernel.Locality      { return s.origin }
func (s *Shipment) Destination() kernel.Locality { return s.destination }
func (s *Shipment) Class() quote.ShippingClass   { return s.class }
func (s *Shipment) Dimensions() quote.Dimensions { return s.dimensions }
func (s *Shipment) Weight() float64              { return s.weight }
func (s *Shipment) DeclaredValue() float64       { return s.declaredValue }
func (s *Shipment) Cost() int64                  { return s.cost }
func (s *Shipment) Insurance() int64             { return s.insurance }
func (s *Shipment) CreatedBy() string            { return s.createdBy }
func (s *Shipment) CreatedAt() time.Time         { return s.createdAt }
func (s *Shipment) LastUpdated() time.Time       { return s.lastUpdated }
func (s *Shipment) Status() Status               { return s.status }
func (s *Shipment) Version() int64               { return s.version }

// Courier returns the assigned courier id or nil.
func (s *Shipment) Courier() *kernel.UUID {
	return s.courierID
}

// History returns a copy of the status history, oldest first.
func (s *Shipment) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// UnsavedHistory returns the entries appended since the shipment was loaded or created.
func (s *Shipment) UnsavedHistory() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history)-s.persistedHistory)
	copy(out, s.history[s.persistedHistory:])
	return out
}

// AssignCourier sets the courier of an unassigned, non-terminal shipment.
func (s *Shipment) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s shipment cannot be assigned", s.status))
	}
	if s.courierID != nil {
		return ErrCourierAlreadyAssigned
	}

	s.courierID = &courierID
	return nil
}

// Transition moves the shipment to target following the status table and
// appends a history entry for actor.
func (s *Shipment) Transition(target Status, actor string, now time.Time) error {
	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	return s.record(newStatus, actor, now)
}

// Finalize force-sets a terminal status, bypassing the transition table.
// It reports false without changes when the shipment is already terminal.
func (s *Shipment) Finalize(terminal Status, actor string, now time.Time) (bool, error) {
	if !terminal.IsTerminal() {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a terminal status", terminal))
	}
	if s.status.IsTerminal() {
		return false, nil
	}

	if err := s.record(terminal, actor, now); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Shipment) record(status Status, actor string, now time.Time) error {
	// History timestamps must not go backwards even if the clock does.
	if last := s.history[len(s.history)-1].At(); now.Before(last) {
		now = last
	}

	entry, err := NewHistoryEntry(status, now, actor)
	if err != nil {
		return err
	}

	s.status = status
	s.history = append(s.history, entry)
	s.lastUpdated = entry.At()
	return nil
}

func validateHistory(history []HistoryEntry, status Status) error {
	if len(history) == 0 || history[len(history)-1].Status() != status {
		return ErrHistoryIsInconsistent
	}
	for i := 1; i < len(history); i++ {
		if history[i].At().Before(history[i-1].At()) {
			return ErrHistoryIsInconsistent
		}
	}
	return nil
}
