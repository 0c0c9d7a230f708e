// Package guard provides the constructor guard pattern used across the domain model.
// Embedding a ConstructorGuard in an entity or value object makes it possible to
// detect zero-value instances that bypassed the designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object was
// not created through its constructor and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their designated
// constructor functions. The guard maintains an internal flag that is only set when
// the object is created properly; zero-value structs fail validation.
//
// Example usage:
//
//	type Recipe struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRecipe(name string) (Recipe, error) {
//	    if name == "" {
//	        return Recipe{}, errors.New("name is required")
//	    }
//	    return Recipe{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Recipe) Validate() error {
//	    return r.guard.Validate(ErrRecipeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call this in the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns nil for properly constructed objects. For zero values it returns the
// provided validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
