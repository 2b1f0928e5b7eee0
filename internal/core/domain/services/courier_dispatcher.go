package services

import (
	"errors"
	"math/rand/v2"

	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/shipment"
)

// ErrNoCouriersAvailable is returned when the pool holds no available courier.
var ErrNoCouriersAvailable = errors.New("no couriers available")

// Random is the source of uniform integers used for courier selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

// CourierDispatcher is a domain service that assigns shipments to couriers
// chosen uniformly at random among the available ones.
//
// Business rules:
//   - Shipments must be valid, unassigned and non-terminal
//   - Every courier in the pool must be valid
//   - Unavailable couriers are never picked
//   - An empty pool (after filtering) yields ErrNoCouriersAvailable
//
// Example usage:
//
//	dispatcher := NewCourierDispatcher(nil)
//	couriers := []*courier.Courier{courier1, courier2, courier3}
//
//	assigned, err := dispatcher.Dispatch(s, couriers)
//	if errors.Is(err, ErrNoCouriersAvailable) {
//	    // Leave the shipment for the assignment job
//	    return
//	}
type CourierDispatcher struct {
	random Random
}

// NewCourierDispatcher creates a dispatcher. A nil random uses the
// goroutine-safe top-level generator of math/rand/v2.
func NewCourierDispatcher(random Random) CourierDispatcher {
	if random == nil {
		random = globalRandom{}
	}
	return CourierDispatcher{random: random}
}

// Dispatch picks a courier and assigns the shipment to it.
//
// Returns:
//   - *courier.Courier: The courier the shipment was assigned to
//   - error: ErrNoCouriersAvailable, or validation/assignment errors
func (d CourierDispatcher) Dispatch(s *shipment.Shipment, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	picked, err := d.Pick(couriers)
	if err != nil {
		return nil, err
	}

	if err = s.AssignCourier(picked.ID()); err != nil {
		return nil, err
	}

	return picked, nil
}

// Pick returns a uniformly random available courier from the pool.
func (d CourierDispatcher) Pick(couriers []*courier.Courier) (*courier.Courier, error) {
	available := make([]*courier.Courier, 0, len(couriers))
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.IsAvailable() {
			available = append(available, c)
		}
	}

	if len(available) == 0 {
		return nil, ErrNoCouriersAvailable
	}

	return available[d.random.IntN(len(available))], nil
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // selection fairness, not security
}
