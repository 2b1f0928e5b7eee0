package kernel

import (
	"strings"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrCityIsRequired           = errs.NewValueIsRequiredError("city")
	ErrLocalityIsNotConstructed = errs.NewValueIsRequiredError(
		"locality must be created via NewLocality constructor")
)

// Locality is a city optionally qualified by a region (department, state).
// It is the key sent to the geocoding service. Without a region the lookup
// is by city name alone and may be ambiguous.
type Locality struct { //nolint:recvcheck //using for validation
	city   string
	region string
	guard  guard.ConstructorGuard
}

// NewLocality trims and collapses whitespace in both parts. City is required.
func NewLocality(city, region string) (Locality, error) {
	l := Locality{
		guard:  guard.NewConstructorGuard(),
		region: normalize(region),
	}

	if err := l.setCity(city); err != nil {
		return Locality{}, err
	}

	return l, nil
}

func (l Locality) City() string {
	return l.city
}

func (l Locality) Region() string {
	return l.region
}

func (l Locality) HasRegion() bool {
	return l.region != ""
}

func (l Locality) Validate() error {
	return l.guard.Validate(ErrLocalityIsNotConstructed)
}

// IsSame reports whether two localities name the same city, ignoring case.
// Regions are not compared: a quote between two places sharing a city name is
// rejected even when the regions differ.
func (l Locality) IsSame(other Locality) bool {
	return strings.EqualFold(l.city, other.city)
}

// Query is the free-text form used for geocoding: "City, Region" or "City".
func (l Locality) Query() string {
	if l.region == "" {
		return l.city
	}
	return l.city + ", " + l.region
}

// Key is a case-folded identifier suitable for cache keys.
func (l Locality) Key() string {
	return strings.ToLower(l.city) + "|" + strings.ToLower(l.region)
}

func (l Locality) String() string {
	return l.Query()
}

func (l *Locality) setCity(city string) error {
	city = normalize(city)
	if city == "" {
		return ErrCityIsRequired
	}
	l.city = city
	return nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
