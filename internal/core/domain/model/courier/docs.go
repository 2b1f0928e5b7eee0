// Package courier provides the Courier aggregate: the people shipments are
// assigned to for delivery.
//
// The package includes:
//   - Courier: identity, display name and availability for assignment
//
// Key business rules:
//   - Couriers must have a valid unique identifier and a name
//   - New couriers are available; the dispatcher only considers available couriers
//   - Availability changes never touch shipments already assigned
//
// The package follows Domain-Driven Design principles, providing encapsulation
// and validation to ensure business rules are enforced.
package courier
