// Package guard provides ConstructorGuard, a marker that lets value objects,
// aggregates, commands and queries detect zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types that must only be created through
// their constructor. The zero value reports itself as not constructed.
//
// Example usage:
//
//	var ErrQuoteRequestIsNotConstructed = errors.New("Request must be created via NewRequest")
//
//	type Request struct {
//	    weight float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func (r Request) Validate() error {
//	    return r.guard.Validate(ErrQuoteRequestIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
