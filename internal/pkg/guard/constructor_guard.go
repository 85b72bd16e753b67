// Package guard implements the constructor-guard pattern used by commands,
// queries, and value objects to reject zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. Embed it in a struct and set it with NewConstructorGuard inside the
// constructor; Validate then fails on any instance that was created directly.
//
// Example:
//
//	type CheckInParcelCommand struct {
//	    trackingNumber string
//	    guard          guard.ConstructorGuard
//	}
//
//	func NewCheckInParcelCommand(trackingNumber string) (CheckInParcelCommand, error) {
//	    if trackingNumber == "" {
//	        return CheckInParcelCommand{}, errors.New("tracking number is required")
//	    }
//	    return CheckInParcelCommand{
//	        trackingNumber: trackingNumber,
//	        guard:          guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c CheckInParcelCommand) Validate() error {
//	    return c.guard.Validate(ErrCheckInParcelCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
