package shipment

import (
	"fmt"
	"regexp"
	"strings"

	"parcel/internal/pkg/errs"
)

// TrackingCodePrefix starts every tracking code.
const TrackingCodePrefix = "CDE"

var trackingCodePattern = regexp.MustCompile(`^` + TrackingCodePrefix + `-[A-F0-9]{8}-[0-9]{5}$`)

// TrackingCode is the public identifier of a shipment, e.g. CDE-A1B2C3D4-56789.
type TrackingCode struct {
	value string
}

// ParseTrackingCode accepts codes in any letter case and returns the canonical upper-case form.
func ParseTrackingCode(s string) (TrackingCode, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if !trackingCodePattern.MatchString(v) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking code", fmt.Errorf("%q does not match %s-XXXXXXXX-NNNNN", s, TrackingCodePrefix))
	}
	return TrackingCode{value: v}, nil
}

func (c TrackingCode) String() string {
	return c.value
}

func (c TrackingCode) IsZero() bool {
	return c.value == ""
}

func (c TrackingCode) Validate() error {
	if c.IsZero() {
		return errs.NewValueIsRequiredError("tracking code")
	}
	return nil
}
