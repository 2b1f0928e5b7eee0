package quote

import (
	"fmt"
	"strings"

	"parcel/internal/pkg/errs"
)

// ShippingClass selects the delivery speed. Urgent carries a flat surcharge.
type ShippingClass int

const (
	UnknownClass ShippingClass = iota
	Standard
	Urgent
)

func getShippingClassStrings() map[ShippingClass]string {
	return map[ShippingClass]string{
		UnknownClass: "Unknown",
		Standard:     "Standard",
		Urgent:       "Urgent",
	}
}

// ParseShippingClass accepts the class name in any case. An empty string means Standard.
func ParseShippingClass(s string) (ShippingClass, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Standard, nil
	}
	for class, name := range getShippingClassStrings() {
		if class != UnknownClass && strings.EqualFold(name, s) {
			return class, nil
		}
	}
	return UnknownClass, errs.NewValueIsInvalidErrorWithCause(
		"shipping class", fmt.Errorf("%q is not a known shipping class", s))
}

func (c ShippingClass) Validate() error {
	if c != Standard && c != Urgent {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping class", fmt.Errorf("%d is not a valid shipping class", c))
	}
	return nil
}

func (c ShippingClass) String() string {
	if s, ok := getShippingClassStrings()[c]; ok {
		return s
	}
	return "Unknown"
}
