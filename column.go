package stitch

// Destroyer is implemented by components that need to observe the end of
// their value's life. Destroy is called exactly once per stored value: when
// the component is removed, its entity is destroyed, or the World is cleared.
// Moving a value between archetypes does not call it.
type Destroyer interface {
	Destroy()
}

// shape is the size/capacity descriptor shared by every column of one
// archetype. Only the archetype mutates it.
type shape struct {
	size     int
	capacity int
}

// column is the type-erased per-type storage of an archetype. The concrete
// element type is fixed when the column is created; callers that need typed
// access assert to *typedColumn[T].
type column interface {
	// component returns the ComponentID this column stores.
	component() ComponentID
	// value returns row's slot boxed as a *T.
	value(row int) any
	// moveFrom moves src's srcRow into dstRow of this column. The source slot
	// is left for src's owner to release.
	moveFrom(src column, srcRow, dstRow int)
	// swap exchanges two rows.
	swap(i, j int)
	// erase removes row by swapping the last occupied row into it, then
	// finalizes the last occupied slot. destroy selects whether the Destroyer
	// hook runs; it is false when the value was already moved elsewhere.
	erase(row int, destroy bool)
	// destroyAll finalizes every occupied row with the Destroyer hook.
	destroyAll()
	// resize reallocates the buffer to capacity slots, keeping occupied rows.
	resize(capacity int)
	// dupe returns an empty column of the same element type bound to s.
	dupe(s *shape) column
}

// typedColumn is the only column implementation: a fixed-capacity slice of T
// whose length always equals shape.capacity.
type typedColumn[T any] struct {
	shape *shape
	data  []T
	id    ComponentID
}

func newTypedColumn[T any](id ComponentID, s *shape) *typedColumn[T] {
	return &typedColumn[T]{
		id:    id,
		shape: s,
		data:  make([]T, s.capacity),
	}
}

func (c *typedColumn[T]) component() ComponentID {
	return c.id
}

func (c *typedColumn[T]) value(row int) any {
	return &c.data[row]
}

// get returns the typed slot for row.
func (c *typedColumn[T]) get(row int) *T {
	return &c.data[row]
}

func (c *typedColumn[T]) moveFrom(src column, srcRow, dstRow int) {
	from, ok := src.(*typedColumn[T])
	if !ok {
		panic("stitch: column element type mismatch on move")
	}
	c.data[dstRow] = from.data[srcRow]
}

func (c *typedColumn[T]) swap(i, j int) {
	c.data[i], c.data[j] = c.data[j], c.data[i]
}

func (c *typedColumn[T]) erase(row int, destroy bool) {
	last := c.shape.size - 1
	if row < last {
		c.swap(row, last)
	}
	c.finalize(last, destroy)
}

func (c *typedColumn[T]) destroyAll() {
	for row := 0; row < c.shape.size; row++ {
		c.finalize(row, true)
	}
}

// finalize ends the life of row's value and zeroes the slot so the garbage
// collector can reclaim anything it referenced.
func (c *typedColumn[T]) finalize(row int, destroy bool) {
	if destroy {
		if d, ok := any(&c.data[row]).(Destroyer); ok {
			d.Destroy()
		}
	}
	var zero T
	c.data[row] = zero
}

func (c *typedColumn[T]) resize(capacity int) {
	grown := make([]T, capacity)
	copy(grown, c.data[:c.shape.size])
	c.data = grown
}

func (c *typedColumn[T]) dupe(s *shape) column {
	return newTypedColumn[T](c.id, s)
}
