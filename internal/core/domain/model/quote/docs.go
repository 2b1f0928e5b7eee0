// Package quote models a prospective shipment for pricing purposes.
//
// A Request carries the parcel dimensions, weight, declared value, the
// origin/destination pair and the shipping class. Its constructor enforces the
// acceptance rules:
//   - every numeric attribute is strictly positive
//   - origin and destination are different localities (case-insensitive)
//   - volume does not exceed 2,000,000 cm³
//   - weight does not exceed 1000 kg
//   - height does not exceed 50 cm when the height-limited policy is active
//
// A Quote is the derived price, never persisted. The urgent surcharge is
// applied to a Quote after pricing so that every pricing strategy shares it.
package quote
