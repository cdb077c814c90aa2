// Package guard holds the constructor guard embedded into aggregates, value
// objects and commands so that zero values can be told apart from values
// built through their constructors.
package guard

import "errors"

var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns err,
// or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
