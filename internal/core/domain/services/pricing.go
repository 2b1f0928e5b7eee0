package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"parcel/internal/core/domain/model/quote"
	"parcel/internal/pkg/errs"
)

// Pricing strategy names accepted by NewPricingStrategy.
const (
	PricingLinear    = "linear"
	PricingBracketed = "bracketed"
)

const (
	linearBase    = 8000.0
	linearPerSize = 0.5
	linearPerKg   = 200.0
	linearPerKm   = 50.0

	bracketedBase = 3000

	insuranceRate = 0.20
)

// SizeMeasure selects how parcel dimensions are reduced to a single number.
type SizeMeasure int

const (
	UnknownMeasure SizeMeasure = iota
	// MeasureVolume is width × length × height in cm³.
	MeasureVolume
	// MeasureSize is width + length + height in cm.
	MeasureSize
)

// ParseSizeMeasure accepts "volume" or "size". An empty string means volume.
func ParseSizeMeasure(s string) (SizeMeasure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volume", "":
		return MeasureVolume, nil
	case "size":
		return MeasureSize, nil
	default:
		return UnknownMeasure, errs.NewValueIsInvalidErrorWithCause(
			"size measure", fmt.Errorf("%q is not one of volume, size", s))
	}
}

func (m SizeMeasure) Of(d quote.Dimensions) float64 {
	if m == MeasureSize {
		return d.Size()
	}
	return d.Volume()
}

// tier is one row of a bracket table. A value belongs to the first tier whose
// upper bound it does not exceed.
type tier struct {
	upTo   float64
	amount int64
}

type brackets []tier

func (b brackets) lookup(v float64) int64 {
	for _, t := range b {
		if v <= t.upTo {
			return t.amount
		}
	}
	return b[len(b)-1].amount
}

var (
	distanceBrackets = brackets{
		{upTo: 50, amount: 5000},
		{upTo: 200, amount: 10000},
		{upTo: 500, amount: 20000},
		{upTo: math.Inf(1), amount: 30000},
	}
	volumeBrackets = brackets{
		{upTo: 30000, amount: 1900},
		{upTo: 100000, amount: 3900},
		{upTo: math.Inf(1), amount: 7900},
	}
	sizeBrackets = brackets{
		{upTo: 100, amount: 1000},
		{upTo: 500, amount: 3000},
		{upTo: math.Inf(1), amount: 5000},
	}
	weightBrackets = brackets{
		{upTo: 5, amount: 2000},
		{upTo: 20, amount: 5000},
		{upTo: math.Inf(1), amount: 10000},
	}
)

// PricingStrategy turns a validated request and a distance into a Quote.
// Implementations are pure: identical inputs always give identical quotes.
// Class surcharges are not included.
type PricingStrategy interface {
	Price(req quote.Request, distanceKm float64) (quote.Quote, error)
}

// NewPricingStrategy selects a strategy by name.
func NewPricingStrategy(name string, measure SizeMeasure) (PricingStrategy, error) {
	if measure != MeasureVolume && measure != MeasureSize {
		return nil, errs.NewValueIsInvalidError("size measure")
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case PricingBracketed, "":
		return BracketedPricing{measure: measure}, nil
	case PricingLinear:
		return LinearPricing{measure: measure}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"pricing strategy", fmt.Errorf("%q is not one of %s, %s", name, PricingLinear, PricingBracketed))
	}
}

// LinearPricing charges max(8000, 8000 + measure×0.5 + weight×200 + distance×50).
// Insurance is reported but not added to the cost.
type LinearPricing struct {
	measure SizeMeasure
}

func NewLinearPricing(measure SizeMeasure) LinearPricing {
	return LinearPricing{measure: measure}
}

func (p LinearPricing) Price(req quote.Request, distanceKm float64) (quote.Quote, error) {
	if err := errors.Join(req.Validate(), checkDistance(distanceKm)); err != nil {
		return quote.Quote{}, err
	}

	cost := linearBase +
		p.measure.Of(req.Dimensions())*linearPerSize +
		req.Weight()*linearPerKg +
		distanceKm*linearPerKm

	return quote.NewQuote(distanceKm, round(math.Max(linearBase, cost)), insurance(req.DeclaredValue())), nil
}

// BracketedPricing charges 3000 plus one bracket amount each for distance,
// measure and weight, plus insurance. Bracket bounds are inclusive.
type BracketedPricing struct {
	measure SizeMeasure
}

func NewBracketedPricing(measure SizeMeasure) BracketedPricing {
	return BracketedPricing{measure: measure}
}

func (p BracketedPricing) Price(req quote.Request, distanceKm float64) (quote.Quote, error) {
	if err := errors.Join(req.Validate(), checkDistance(distanceKm)); err != nil {
		return quote.Quote{}, err
	}

	sizeTable := volumeBrackets
	if p.measure == MeasureSize {
		sizeTable = sizeBrackets
	}

	ins := insurance(req.DeclaredValue())
	cost := bracketedBase +
		distanceBrackets.lookup(distanceKm) +
		sizeTable.lookup(p.measure.Of(req.Dimensions())) +
		weightBrackets.lookup(req.Weight()) +
		ins

	return quote.NewQuote(distanceKm, cost, ins), nil
}

func insurance(declaredValue float64) int64 {
	return round(declaredValue * insuranceRate)
}

// round rounds half away from zero.
func round(v float64) int64 {
	return int64(math.Round(v))
}

func checkDistance(km float64) error {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return errs.NewValueIsOutOfRangeError("distance", km, 0, math.Inf(1))
	}
	return nil
}
