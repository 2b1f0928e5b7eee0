// Package kernel provides the shared value objects of the parcel domain.
//
// The package includes:
//   - UUID: identifier for aggregates (shipments, couriers, customers)
//   - Coordinate: a validated latitude/longitude pair produced by geocoding
//   - Locality: a city with an optional region, used as a geocoding key
//
// All values are immutable, must be created through their constructors and
// report zero-value misuse through Validate.
package kernel
