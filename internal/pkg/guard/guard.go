// Package guard provides ConstructorGuard, a marker that lets value objects,
// aggregates and commands detect zero-value instances that bypassed their
// constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object is a zero
// value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types whose invariants are established by
// a constructor. Its zero value reports "not constructed".
//
// Example usage:
//
//	var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider")
//
//	type Rider struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRider(name string) (*Rider, error) {
//	    if name == "" {
//	        return nil, errors.New("name is required")
//	    }
//	    return &Rider{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r *Rider) Validate() error {
//	    return r.guard.Validate(ErrRiderIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
