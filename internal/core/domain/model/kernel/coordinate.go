package kernel

import (
	"errors"
	"fmt"
	"math"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

var (
	// ErrCoordinateIsInvalid is wrapped by every coordinate validation failure,
	// including values received from the geocoding service.
	ErrCoordinateIsInvalid = errors.New("coordinate is invalid")

	ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
		"coordinate must be created via NewCoordinate constructor")
)

// Coordinate is a geographic point in decimal degrees (WGS84).
// It is always derived from geocoding and never persisted.
type Coordinate struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewCoordinate validates that both values are finite and inside
// [-90, 90] for latitude and [-180, 180] for longitude.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLat(lat), c.setLon(lon)); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

func (c Coordinate) Lat() float64 {
	return c.lat
}

func (c Coordinate) Lon() float64 {
	return c.lon
}

func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// IsEqual compares both components exactly.
func (c Coordinate) IsEqual(other Coordinate) bool {
	return c.lat == other.lat && c.lon == other.lon
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.lat, c.lon)
}

func (c *Coordinate) setLat(lat float64) error {
	if err := checkDegrees("latitude", lat, MinLatitude, MaxLatitude); err != nil {
		return err
	}
	c.lat = lat
	return nil
}

func (c *Coordinate) setLon(lon float64) error {
	if err := checkDegrees("longitude", lon, MinLongitude, MaxLongitude); err != nil {
		return err
	}
	c.lon = lon
	return nil
}

func checkDegrees(name string, v, minValue, maxValue float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %w", ErrCoordinateIsInvalid,
			errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", v)))
	}
	if v < minValue || v > maxValue {
		return fmt.Errorf("%w: %w", ErrCoordinateIsInvalid,
			errs.NewValueIsOutOfRangeError(name, v, minValue, maxValue))
	}
	return nil
}
