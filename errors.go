package stitch

import "github.com/rotisserie/eris"

var (
	// ErrEntityNotFound is returned when an entity was never created or has
	// already been destroyed.
	ErrEntityNotFound = eris.New("entity not found")
	// ErrComponentAlreadyPresent is returned when adding a component type the
	// entity already holds.
	ErrComponentAlreadyPresent = eris.New("component already present")
	// ErrComponentNotPresent is returned when removing or reading a component
	// type the entity does not hold.
	ErrComponentNotPresent = eris.New("component not present")
)
