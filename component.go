package stitch

import "reflect"

// componentInfo describes one registered component type.
type componentInfo struct {
	typ       reflect.Type
	newColumn func(s *shape) column // builds empty storage bound to s
}

// componentRegistry maps Go types to ComponentIDs for one World.
type componentRegistry struct {
	typeToID map[reflect.Type]ComponentID
	infos    []componentInfo // indexed by ComponentID
}

// ComponentIDOf returns the ComponentID of T in w, registering T on first use.
// IDs are scoped to the World; two Worlds may number the same type
// differently.
//
// Parameters:
//   - w: The World owning the registration.
//
// Returns:
//   - The ComponentID for T.
func ComponentIDOf[T any](w *World) ComponentID {
	t := reflect.TypeFor[T]()
	if id, ok := w.components.typeToID[t]; ok {
		return id
	}
	id := ComponentID(len(w.components.infos))
	w.components.typeToID[t] = id
	w.components.infos = append(w.components.infos, componentInfo{
		typ: t,
		newColumn: func(s *shape) column {
			return newTypedColumn[T](id, s)
		},
	})
	w.index.ensure(id)
	return id
}

// LookupComponentID returns the ComponentID of T without registering it.
func LookupComponentID[T any](w *World) (ComponentID, bool) {
	id, ok := w.components.typeToID[reflect.TypeFor[T]()]
	return id, ok
}

// ComponentType returns the Go type registered under id, or nil.
func (w *World) ComponentType(id ComponentID) reflect.Type {
	if int(id) >= len(w.components.infos) {
		return nil
	}
	return w.components.infos[id].typ
}
