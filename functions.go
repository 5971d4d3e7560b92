package stitch

import (
	"reflect"
	"slices"

	"github.com/rotisserie/eris"
)

// AddComponent attaches value as the T component of e and returns a pointer
// to the stored copy.
//
// The entity moves to the archetype for its Kind plus T. The pointer stays
// valid until the next structural change to the World.
//
// Parameters:
//   - w: The World where the entity resides.
//   - e: The Entity to modify.
//   - value: The initial component value.
//
// Returns:
//   - A pointer to the stored component.
//   - ErrEntityNotFound if e is not alive, ErrComponentAlreadyPresent if e
//     already holds a T.
func AddComponent[T any](w *World, e Entity, value T) (*T, error) {
	rec := w.entities.lookup(e)
	if rec == nil {
		return nil, eris.Wrapf(ErrEntityNotFound, "failed to add component to entity %v", e)
	}
	id := ComponentIDOf[T](w)
	if _, ok := w.index.column(rec.arch, id); ok {
		return nil, eris.Wrapf(ErrComponentAlreadyPresent, "entity %v already has %v", e, w.ComponentType(id))
	}
	dst := w.withComponent(rec.arch, id)
	fresh := w.move(rec, dst, false)
	if fresh < 0 {
		panic("stitch: add transition produced no new column")
	}
	slot := typedColumnAt[T](dst, fresh).get(rec.row)
	*slot = value
	return slot, nil
}

// SetComponent stores value as the T component of e, adding the component
// when e does not hold one yet. A replaced value gets its Destroyer hook.
func SetComponent[T any](w *World, e Entity, value T) (*T, error) {
	if slot := TryGetComponent[T](w, e); slot != nil {
		if d, ok := any(slot).(Destroyer); ok {
			d.Destroy()
		}
		*slot = value
		return slot, nil
	}
	return AddComponent(w, e, value)
}

// RemoveComponent detaches the T component from e. The value's Destroyer hook
// runs, and the entity moves to the archetype for its Kind minus T.
//
// Returns:
//   - ErrEntityNotFound if e is not alive, ErrComponentNotPresent if e holds
//     no T.
func RemoveComponent[T any](w *World, e Entity) error {
	id, ok := LookupComponentID[T](w)
	if !ok {
		if !w.IsAlive(e) {
			return eris.Wrapf(ErrEntityNotFound, "failed to remove component from entity %v", e)
		}
		return eris.Wrapf(ErrComponentNotPresent, "entity %v has no %v", e, reflect.TypeFor[T]())
	}
	return w.RemoveComponentID(e, id)
}

// GetComponent returns a pointer to the T component of e.
//
// Returns:
//   - A pointer into the archetype's storage, valid until the next
//     structural change.
//   - ErrEntityNotFound if e is not alive, ErrComponentNotPresent if e holds
//     no T.
func GetComponent[T any](w *World, e Entity) (*T, error) {
	rec := w.entities.lookup(e)
	if rec == nil {
		return nil, eris.Wrapf(ErrEntityNotFound, "failed to get component of entity %v", e)
	}
	slot := componentAt[T](w, rec)
	if slot == nil {
		return nil, eris.Wrapf(ErrComponentNotPresent, "entity %v has no %v", e, reflect.TypeFor[T]())
	}
	return slot, nil
}

// TryGetComponent is GetComponent without the error: it returns nil when e is
// not alive or holds no T.
func TryGetComponent[T any](w *World, e Entity) *T {
	rec := w.entities.lookup(e)
	if rec == nil {
		return nil
	}
	return componentAt[T](w, rec)
}

// GetComponents2 returns the A and B components of e together.
func GetComponents2[A, B any](w *World, e Entity) (*A, *B, error) {
	a, err := GetComponent[A](w, e)
	if err != nil {
		return nil, nil, err
	}
	b, err := GetComponent[B](w, e)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Has reports whether e holds a T.
func Has[T any](w *World, e Entity) bool {
	id, ok := LookupComponentID[T](w)
	return ok && w.HasAll(e, id)
}

// Reserve grows every existing archetype that stores T so it holds at least
// n rows without reallocation.
func Reserve[T any](w *World, n int) {
	id := ComponentIDOf[T](w)
	holders := w.index.holders(id)
	it := holders.Iterator()
	for it.HasNext() {
		a := w.archetypes.all[it.Next()]
		if a.shape.capacity < n {
			before := a.shape.capacity
			a.resize(n)
			w.noteGrowth(a, before)
		}
	}
}

// ClearComponent removes T from every entity that holds it. Destroyer hooks
// run once per removed value.
func ClearComponent[T any](w *World) {
	id, ok := LookupComponentID[T](w)
	if !ok {
		return
	}
	var victims []Entity
	it := w.index.holders(id).Iterator()
	for it.HasNext() {
		victims = append(victims, w.archetypes.all[it.Next()].entities...)
	}
	for _, e := range victims {
		rec := w.entities.lookup(e)
		w.move(rec, w.withoutComponent(rec.arch, id), true)
	}
	w.log.Debug().Int("entities", len(victims)).Str("component", w.ComponentType(id).String()).Msg("component cleared")
}

// SortComponents reorders the rows of every archetype storing T so that, in
// iteration order, T values are non-decreasing under less. The sort is stable
// and moves whole rows, so every entity keeps all of its components.
func SortComponents[T any](w *World, less func(a, b *T) bool) {
	id, ok := LookupComponentID[T](w)
	if !ok {
		return
	}
	it := w.index.holders(id).Iterator()
	for it.HasNext() {
		a := w.archetypes.all[it.Next()]
		pos, _ := w.index.column(a, id)
		sortRows(a, typedColumnAt[T](a, pos), less, &w.entities)
	}
}

// sortRows computes the sorted row order of a by col, then applies it with
// row swaps so that all columns and records follow.
func sortRows[T any](a *archetype, col *typedColumn[T], less func(a, b *T) bool, records *entityRegistry) {
	n := a.size()
	order := make([]int, n) // order[i] = original row that belongs at i
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		switch {
		case less(col.get(x), col.get(y)):
			return -1
		case less(col.get(y), col.get(x)):
			return 1
		}
		return 0
	})
	at := make([]int, n)  // at[i] = original row currently stored at i
	pos := make([]int, n) // pos[r] = current position of original row r
	for i := range at {
		at[i] = i
		pos[i] = i
	}
	for i, want := range order {
		cur := pos[want]
		if cur == i {
			continue
		}
		displaced := at[i]
		a.swapRows(i, cur, records)
		at[i], at[cur] = want, displaced
		pos[want], pos[displaced] = i, cur
	}
}

// componentAt resolves rec's T slot through the type index, or nil.
func componentAt[T any](w *World, rec *record) *T {
	id, ok := LookupComponentID[T](w)
	if !ok {
		return nil
	}
	pos, ok := w.index.column(rec.arch, id)
	if !ok {
		return nil
	}
	return typedColumnAt[T](rec.arch, pos).get(rec.row)
}
