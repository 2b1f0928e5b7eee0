package quote

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

const (
	// MaxWeightKg is the heaviest accepted parcel.
	MaxWeightKg = 1000.0
	// MaxHeightCm applies only under a height-limited Policy.
	MaxHeightCm = 50.0
)

var (
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
	ErrSameLocality            = errs.NewValueIsInvalidErrorWithCause(
		"destination", errors.New("origin and destination are the same locality"))
)

// Policy holds the acceptance rules that vary between deployments.
type Policy struct {
	HeightLimited bool
}

// Request is a validated quote request.
type Request struct { //nolint:recvcheck //using for validation
	dimensions    Dimensions
	weight        float64
	declaredValue float64
	origin        kernel.Locality
	destination   kernel.Locality
	class         ShippingClass
	guard         guard.ConstructorGuard
}

// NewRequest validates every acceptance rule and reports all violations at once.
// The same-locality check runs only when both localities are valid.
func NewRequest(
	dimensions Dimensions,
	weight float64,
	declaredValue float64,
	origin kernel.Locality,
	destination kernel.Locality,
	class ShippingClass,
	policy Policy,
) (Request, error) {
	r := Request{
		dimensions:  dimensions,
		origin:      origin,
		destination: destination,
		class:       class,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dimensions.Validate(),
		r.checkHeight(policy),
		r.setWeight(weight),
		positive("declared value", declaredValue, &r.declaredValue),
		class.Validate(),
		r.checkLocalities(),
	); err != nil {
		return Request{}, err
	}

	return r, nil
}

func (r Request) Dimensions() Dimensions       { return r.dimensions }
func (r Request) Weight() float64              { return r.weight }
func (r Request) DeclaredValue() float64       { return r.declaredValue }
func (r Request) Origin() kernel.Locality      { return r.origin }
func (r Request) Destination() kernel.Locality { return r.destination }
func (r Request) Class() ShippingClass         { return r.class }

func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r *Request) setWeight(weight float64) error {
	if err := positive("weight", weight, &r.weight); err != nil {
		return err
	}
	if weight > MaxWeightKg {
		r.weight = 0
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, MaxWeightKg)
	}
	return nil
}

func (r Request) checkHeight(policy Policy) error {
	if !policy.HeightLimited || r.dimensions.Validate() != nil {
		return nil
	}
	if h := r.dimensions.Height(); h > MaxHeightCm {
		return errs.NewValueIsOutOfRangeError("height", h, 0, MaxHeightCm)
	}
	return nil
}

func (r Request) checkLocalities() error {
	originErr := r.origin.Validate()
	destinationErr := r.destination.Validate()
	if originErr != nil || destinationErr != nil {
		return errors.Join(originErr, destinationErr)
	}
	if r.origin.IsSame(r.destination) {
		return ErrSameLocality
	}
	return nil
}
