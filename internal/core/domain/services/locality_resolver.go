package services

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// LocalityResolver turns named localities into coordinates.
type LocalityResolver struct {
	geocoder ports.Geocoder
}

func NewLocalityResolver(geocoder ports.Geocoder) (*LocalityResolver, error) {
	if geocoder == nil {
		return nil, errs.NewValueIsRequiredError("geocoder")
	}
	return &LocalityResolver{geocoder: geocoder}, nil
}

// Resolve returns the coordinates of the highest-ranked geocoding candidate.
func (r *LocalityResolver) Resolve(ctx context.Context, locality kernel.Locality) (kernel.Coordinate, error) {
	if err := locality.Validate(); err != nil {
		return kernel.Coordinate{}, err
	}

	coordinate, err := r.geocoder.Geocode(ctx, locality)
	if err != nil {
		return kernel.Coordinate{}, err
	}
	if err = coordinate.Validate(); err != nil {
		return kernel.Coordinate{}, err
	}

	return coordinate, nil
}

// ResolvePair resolves both localities concurrently. The first failure
// cancels the other lookup and is returned.
func (r *LocalityResolver) ResolvePair(
	ctx context.Context,
	origin, destination kernel.Locality,
) (kernel.Coordinate, kernel.Coordinate, error) {
	var from, to kernel.Coordinate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		from, err = r.Resolve(gctx, origin)
		return err
	})
	g.Go(func() error {
		var err error
		to, err = r.Resolve(gctx, destination)
		return err
	})

	if err := g.Wait(); err != nil {
		return kernel.Coordinate{}, kernel.Coordinate{}, err
	}

	return from, to, nil
}
