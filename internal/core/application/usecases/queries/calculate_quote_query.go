package queries

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/pkg/guard"
)

var ErrCalculateQuoteQueryIsNotConstructed = errors.New(
	"CalculateQuoteQuery must be created via NewCalculateQuoteQuery constructor",
)

// CalculateQuoteQuery prices a parcel without persisting anything.
type CalculateQuoteQuery struct { //nolint:recvcheck //using for validation
	request quote.Request
	guard   guard.ConstructorGuard
}

// NewCalculateQuoteQuery wraps an already validated request. Same-locality
// and range violations are rejected by quote.NewRequest before any
// collaborator is called.
func NewCalculateQuoteQuery(request quote.Request) (CalculateQuoteQuery, error) {
	if err := request.Validate(); err != nil {
		return CalculateQuoteQuery{}, err
	}
	return CalculateQuoteQuery{request: request, guard: guard.NewConstructorGuard()}, nil
}

func (q CalculateQuoteQuery) Validate() error {
	return q.guard.Validate(ErrCalculateQuoteQueryIsNotConstructed)
}

func (q CalculateQuoteQuery) Request() quote.Request {
	return q.request
}

// CalculateQuoteQueryResponse echoes the localities back next to the price.
// DistanceKm is rounded to two decimals.
type CalculateQuoteQueryResponse struct {
	DistanceKm  float64
	Cost        int64
	Insurance   int64
	Origin      kernel.Locality
	Destination kernel.Locality
}

// Quoter computes a quote including the urgent surcharge.
type Quoter interface {
	Quote(ctx context.Context, request quote.Request) (quote.Quote, error)
}

type CalculateQuoteQueryHandler struct {
	quoter Quoter
}

func NewCalculateQuoteQueryHandler(quoter Quoter) CalculateQuoteQueryHandler {
	return CalculateQuoteQueryHandler{quoter: quoter}
}

// Handle returns ports.ErrLocalityNotFound, errs.UpstreamUnavailableError or
// kernel.ErrCoordinateIsInvalid unchanged from the quoter.
func (h CalculateQuoteQueryHandler) Handle(
	ctx context.Context,
	query CalculateQuoteQuery,
) (CalculateQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateQuoteQueryResponse{}, err
	}

	q, err := h.quoter.Quote(ctx, query.Request())
	if err != nil {
		return CalculateQuoteQueryResponse{}, err
	}

	return CalculateQuoteQueryResponse{
		DistanceKm:  q.RoundedDistanceKm(),
		Cost:        q.Cost(),
		Insurance:   q.Insurance(),
		Origin:      query.Request().Origin(),
		Destination: query.Request().Destination(),
	}, nil
}
