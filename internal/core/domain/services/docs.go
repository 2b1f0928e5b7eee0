// Package services provides domain services that orchestrate business operations
// across domain entities and collaborators. It implements workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - LocalityResolver: resolves locality names to coordinates through a Geocoder
//   - DistanceStrategy: great-circle and routing-service distance calculators
//   - PricingStrategy: linear and bracketed pricing formulas
//   - Quoter: the resolve, measure, price and surcharge pipeline
//   - TrackingCodeGenerator: random, weakly time-ordered tracking codes
//   - CourierDispatcher: uniform random courier assignment
//
// Strategies are selected by name at composition time and never fall back to
// one another at runtime.
package services
