package shipment

import (
	"errors"
	"fmt"
	"strings"

	"parcel/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	PendingPayment
	PaymentConfirmed
	InPreparation
	InTransit
	InRoute
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		PendingPayment:   "PendingPayment",
		PaymentConfirmed: "PaymentConfirmed",
		InPreparation:    "InPreparation",
		InTransit:        "InTransit",
		InRoute:          "InRoute",
		Delivered:        "Delivered",
		Cancelled:        "Cancelled",
	}
}

// getNextStatuses maps each non-terminal status to its happy-path successor.
func getNextStatuses() map[Status]Status {
	//nolint:exhaustive // terminal statuses have no successor
	return map[Status]Status{
		PendingPayment:   PaymentConfirmed,
		PaymentConfirmed: InPreparation,
		InPreparation:    InTransit,
		InTransit:        InRoute,
		InRoute:          Delivered,
	}
}

// ParseStatus accepts a status name in any case.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the happy-path successor, if any.
func (s Status) Next() (Status, bool) {
	next, ok := getNextStatuses()[s]
	return next, ok
}

// CanTransitionTo checks the transition table without changing anything.
// Allowed: the happy-path successor, or Cancelled from any non-terminal status.
func (s Status) CanTransitionTo(target Status) error {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return errs.NewTransitionIsInvalidErrorWithCause(s.String(), target.String(), err)
	}
	if s.IsTerminal() {
		return errs.NewTransitionIsInvalidErrorWithCause(
			s.String(), target.String(), fmt.Errorf("%s is a terminal status", s))
	}
	if target == Cancelled {
		return nil
	}
	if next, _ := s.Next(); next != target {
		return errs.NewTransitionIsInvalidError(s.String(), target.String())
	}
	return nil
}

// TransitionTo returns target if the transition is allowed.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, err
	}
	return target, nil
}
