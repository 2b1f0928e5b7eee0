package quote

import (
	"math"
)

// UrgentSurcharge is added to the base cost of Urgent shipments.
const UrgentSurcharge int64 = 2000

// Quote is the result of pricing a Request over a distance.
// Cost includes insurance; Insurance is reported separately as well.
type Quote struct {
	distanceKm float64
	cost       int64
	insurance  int64
}

func NewQuote(distanceKm float64, cost, insurance int64) Quote {
	return Quote{
		distanceKm: distanceKm,
		cost:       cost,
		insurance:  insurance,
	}
}

func (q Quote) DistanceKm() float64 {
	return q.distanceKm
}

// RoundedDistanceKm is the distance rounded to two decimals for display.
func (q Quote) RoundedDistanceKm() float64 {
	return math.Round(q.distanceKm*100) / 100
}

func (q Quote) Cost() int64 {
	return q.cost
}

func (q Quote) Insurance() int64 {
	return q.insurance
}

// WithSurcharge returns the quote with the class surcharge added to the cost.
// Standard shipments are returned unchanged.
func (q Quote) WithSurcharge(class ShippingClass) Quote {
	if class == Urgent {
		q.cost += UrgentSurcharge
	}
	return q
}
