package ports

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/kernel"
)

// ErrLocalityNotFound is returned by a Geocoder that has no candidate for the locality.
var ErrLocalityNotFound = errors.New("locality not found")

// Geocoder resolves a named locality to coordinates using the highest-ranked candidate.
//
// Errors:
//   - ErrLocalityNotFound when there are no candidates
//   - errs.UpstreamUnavailableError on transport failures or non-2xx responses
//   - kernel.ErrCoordinateIsInvalid when the candidate carries unusable coordinates
type Geocoder interface {
	Geocode(ctx context.Context, locality kernel.Locality) (kernel.Coordinate, error)
}

// Router returns the road distance in meters between two coordinates.
// Failures are reported as errs.UpstreamUnavailableError.
type Router interface {
	RouteMeters(ctx context.Context, from, to kernel.Coordinate) (float64, error)
}
