package quote

import (
	"errors"
	"fmt"
	"math"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

// MaxVolumeCm3 is the largest accepted parcel volume.
const MaxVolumeCm3 = 2_000_000.0

var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions of a parcel in centimeters.
type Dimensions struct { //nolint:recvcheck //using for validation
	width  float64
	length float64
	height float64
	guard  guard.ConstructorGuard
}

func NewDimensions(width, length, height float64) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		positive("width", width, &d.width),
		positive("length", length, &d.length),
		positive("height", height, &d.height),
	); err != nil {
		return Dimensions{}, err
	}

	if v := d.Volume(); v > MaxVolumeCm3 {
		return Dimensions{}, errs.NewValueIsOutOfRangeError("volume", v, 0, MaxVolumeCm3)
	}

	return d, nil
}

func (d Dimensions) Width() float64  { return d.width }
func (d Dimensions) Length() float64 { return d.length }
func (d Dimensions) Height() float64 { return d.height }

// Volume in cm³.
func (d Dimensions) Volume() float64 {
	return d.width * d.length * d.height
}

// Size is the single "size" scalar used when no true volume is priced:
// the sum of the three edges in cm.
func (d Dimensions) Size() float64 {
	return d.width + d.length + d.height
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func positive(name string, v float64, dst *float64) error {
	if !(v > 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", v))
	}
	if math.IsInf(v, 1) {
		return errs.NewValueIsInvalidErrorWithCause(name, errors.New("value is not finite"))
	}
	*dst = v
	return nil
}
