package stitch

// Filter iterates every entity holding an A and yields typed pointers without
// a per-row index lookup: the column is resolved once per archetype.
//
// Filter2 and Filter3 follow the same pattern for two and three components.
type Filter[A any] struct {
	view *View
	arch *archetype
	colA *typedColumn[A]
	idA  ComponentID
}

// NewFilter creates a Filter over entities holding A and none of excluded.
//
// Parameters:
//   - w: The World to query.
//   - excluded: Component types to skip.
//
// Returns:
//   - A pointer to the newly created Filter[A].
func NewFilter[A any](w *World, excluded ...ComponentID) *Filter[A] {
	idA := ComponentIDOf[A](w)
	return &Filter[A]{
		view: NewView(w, []ComponentID{idA}, excluded...),
		idA:  idA,
	}
}

// Reset rewinds the filter and picks up archetypes created since the last
// iteration.
func (f *Filter[A]) Reset() {
	f.view.Reset()
	f.arch = nil
}

// Next advances to the next matching entity.
//
// Example:
//
//	query := stitch.NewFilter[Position](world)
//	for query.Next() {
//	    pos := query.Get()
//	    // ...
//	}
func (f *Filter[A]) Next() bool {
	if !f.view.Next() {
		return false
	}
	if a, _ := f.view.current(); a != f.arch {
		f.arch = a
		f.colA = columnFor[A](f.view.world, a, f.idA)
	}
	return true
}

// Entity returns the current entity.
func (f *Filter[A]) Entity() Entity {
	return f.view.Entity()
}

// Get returns the current entity's A.
func (f *Filter[A]) Get() *A {
	return f.colA.get(f.view.row)
}

// Len returns how many entities match.
func (f *Filter[A]) Len() int {
	return f.view.Len()
}

// Entities returns every matching entity.
func (f *Filter[A]) Entities() []Entity {
	return f.view.Entities()
}

// DestroyEntities destroys every matching entity.
func (f *Filter[A]) DestroyEntities() int {
	f.arch = nil
	return f.view.DestroyEntities()
}

// Filter2 iterates every entity holding both an A and a B.
type Filter2[A, B any] struct {
	view *View
	arch *archetype
	colA *typedColumn[A]
	colB *typedColumn[B]
	idA  ComponentID
	idB  ComponentID
}

// NewFilter2 creates a Filter2 over entities holding A and B and none of
// excluded.
func NewFilter2[A, B any](w *World, excluded ...ComponentID) *Filter2[A, B] {
	idA := ComponentIDOf[A](w)
	idB := ComponentIDOf[B](w)
	return &Filter2[A, B]{
		view: NewView(w, []ComponentID{idA, idB}, excluded...),
		idA:  idA,
		idB:  idB,
	}
}

// Reset rewinds the filter.
func (f *Filter2[A, B]) Reset() {
	f.view.Reset()
	f.arch = nil
}

// Next advances to the next matching entity.
func (f *Filter2[A, B]) Next() bool {
	if !f.view.Next() {
		return false
	}
	if a, _ := f.view.current(); a != f.arch {
		f.arch = a
		f.colA = columnFor[A](f.view.world, a, f.idA)
		f.colB = columnFor[B](f.view.world, a, f.idB)
	}
	return true
}

// Entity returns the current entity.
func (f *Filter2[A, B]) Entity() Entity {
	return f.view.Entity()
}

// Get returns the current entity's A and B.
func (f *Filter2[A, B]) Get() (*A, *B) {
	return f.colA.get(f.view.row), f.colB.get(f.view.row)
}

// Len returns how many entities match.
func (f *Filter2[A, B]) Len() int {
	return f.view.Len()
}

// Entities returns every matching entity.
func (f *Filter2[A, B]) Entities() []Entity {
	return f.view.Entities()
}

// DestroyEntities destroys every matching entity.
func (f *Filter2[A, B]) DestroyEntities() int {
	f.arch = nil
	return f.view.DestroyEntities()
}

// Filter3 iterates every entity holding an A, a B and a C.
type Filter3[A, B, C any] struct {
	view *View
	arch *archetype
	colA *typedColumn[A]
	colB *typedColumn[B]
	colC *typedColumn[C]
	idA  ComponentID
	idB  ComponentID
	idC  ComponentID
}

// NewFilter3 creates a Filter3 over entities holding A, B and C and none of
// excluded.
func NewFilter3[A, B, C any](w *World, excluded ...ComponentID) *Filter3[A, B, C] {
	idA := ComponentIDOf[A](w)
	idB := ComponentIDOf[B](w)
	idC := ComponentIDOf[C](w)
	return &Filter3[A, B, C]{
		view: NewView(w, []ComponentID{idA, idB, idC}, excluded...),
		idA:  idA,
		idB:  idB,
		idC:  idC,
	}
}

// Reset rewinds the filter.
func (f *Filter3[A, B, C]) Reset() {
	f.view.Reset()
	f.arch = nil
}

// Next advances to the next matching entity.
func (f *Filter3[A, B, C]) Next() bool {
	if !f.view.Next() {
		return false
	}
	if a, _ := f.view.current(); a != f.arch {
		f.arch = a
		f.colA = columnFor[A](f.view.world, a, f.idA)
		f.colB = columnFor[B](f.view.world, a, f.idB)
		f.colC = columnFor[C](f.view.world, a, f.idC)
	}
	return true
}

// Entity returns the current entity.
func (f *Filter3[A, B, C]) Entity() Entity {
	return f.view.Entity()
}

// Get returns the current entity's A, B and C.
func (f *Filter3[A, B, C]) Get() (*A, *B, *C) {
	row := f.view.row
	return f.colA.get(row), f.colB.get(row), f.colC.get(row)
}

// Len returns how many entities match.
func (f *Filter3[A, B, C]) Len() int {
	return f.view.Len()
}

// Entities returns every matching entity.
func (f *Filter3[A, B, C]) Entities() []Entity {
	return f.view.Entities()
}

// DestroyEntities destroys every matching entity.
func (f *Filter3[A, B, C]) DestroyEntities() int {
	f.arch = nil
	return f.view.DestroyEntities()
}

// columnFor returns a's storage for id as a column of T. a must store id.
func columnFor[T any](w *World, a *archetype, id ComponentID) *typedColumn[T] {
	pos, ok := w.index.column(a, id)
	if !ok {
		panic("stitch: archetype does not store the filtered component")
	}
	return typedColumnAt[T](a, pos)
}
