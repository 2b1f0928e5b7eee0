package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"
)

// EarthRadiusKm is the mean Earth radius used by the great-circle formula.
const EarthRadiusKm = 6371.0

// Distance strategy names accepted by NewDistanceStrategy.
const (
	DistanceGreatCircle = "great_circle"
	DistanceRouting     = "routing"
)

// DistanceStrategy computes the distance in kilometers between two coordinates.
type DistanceStrategy interface {
	Distance(ctx context.Context, from, to kernel.Coordinate) (float64, error)
}

// NewDistanceStrategy selects a strategy by name. The routing strategy requires a router.
func NewDistanceStrategy(name string, router ports.Router) (DistanceStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DistanceGreatCircle, "":
		return GreatCircleDistance{}, nil
	case DistanceRouting:
		return NewRoutingDistance(router)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"distance mode", fmt.Errorf("%q is not one of %s, %s", name, DistanceGreatCircle, DistanceRouting))
	}
}

// GreatCircleDistance is the haversine distance on a sphere of EarthRadiusKm.
// It is symmetric, zero for identical points and never fails for valid coordinates.
type GreatCircleDistance struct{}

func (GreatCircleDistance) Distance(_ context.Context, from, to kernel.Coordinate) (float64, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return 0, err
	}

	lat1 := radians(from.Lat())
	lat2 := radians(to.Lat())
	dLat := radians(to.Lat() - from.Lat())
	dLon := radians(to.Lon() - from.Lon())

	h := sq(math.Sin(dLat/2)) + math.Cos(lat1)*math.Cos(lat2)*sq(math.Sin(dLon/2))
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(math.Min(1, h))), nil
}

// RoutingDistance asks a routing service for the road distance.
type RoutingDistance struct {
	router ports.Router
}

func NewRoutingDistance(router ports.Router) (*RoutingDistance, error) {
	if router == nil {
		return nil, errs.NewValueIsRequiredError("router")
	}
	return &RoutingDistance{router: router}, nil
}

func (r *RoutingDistance) Distance(ctx context.Context, from, to kernel.Coordinate) (float64, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return 0, err
	}

	meters, err := r.router.RouteMeters(ctx, from, to)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(meters) || math.IsInf(meters, 0) || meters < 0 {
		return 0, errs.NewUpstreamUnavailableErrorWithCause(
			"routing", fmt.Errorf("unusable distance %v", meters))
	}

	return meters / 1000, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func sq(v float64) float64 {
	return v * v
}
