package services

import (
	"context"

	"parcel/internal/core/domain/model/quote"
	"parcel/internal/pkg/errs"
)

// Quoter runs the quote pipeline: resolve both localities, measure the
// distance, price the request and apply the class surcharge. Invalid requests
// are rejected before any collaborator is called.
type Quoter struct {
	resolver *LocalityResolver
	distance DistanceStrategy
	pricing  PricingStrategy
}

func NewQuoter(resolver *LocalityResolver, distance DistanceStrategy, pricing PricingStrategy) (*Quoter, error) {
	if resolver == nil {
		return nil, errs.NewValueIsRequiredError("resolver")
	}
	if distance == nil {
		return nil, errs.NewValueIsRequiredError("distance")
	}
	if pricing == nil {
		return nil, errs.NewValueIsRequiredError("pricing")
	}
	return &Quoter{resolver: resolver, distance: distance, pricing: pricing}, nil
}

func (q *Quoter) Quote(ctx context.Context, req quote.Request) (quote.Quote, error) {
	if err := req.Validate(); err != nil {
		return quote.Quote{}, err
	}

	from, to, err := q.resolver.ResolvePair(ctx, req.Origin(), req.Destination())
	if err != nil {
		return quote.Quote{}, err
	}

	km, err := q.distance.Distance(ctx, from, to)
	if err != nil {
		return quote.Quote{}, err
	}

	price, err := q.pricing.Price(req, km)
	if err != nil {
		return quote.Quote{}, err
	}

	return price.WithSurcharge(req.Class()), nil
}
