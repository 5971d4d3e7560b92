package stitch

// Builder creates entities that start out holding an A. The destination
// archetype is resolved once, so each new entity is written straight into
// its final row instead of walking transitions from the empty archetype.
type Builder[A any] struct {
	world *World
	arch  *archetype
	posA  int
}

// NewBuilder creates a Builder for entities holding A.
func NewBuilder[A any](w *World) *Builder[A] {
	idA := ComponentIDOf[A](w)
	arch := w.archetypeFor(NewKind(idA))
	b := &Builder[A]{world: w, arch: arch}
	b.posA, _ = w.index.column(arch, idA)
	return b
}

// NewEntity creates one entity holding a.
func (b *Builder[A]) NewEntity(a A) Entity {
	e, row := b.world.spawn(b.arch)
	*typedColumnAt[A](b.arch, b.posA).get(row) = a
	return e
}

// NewEntities creates count entities, each holding a copy of a.
func (b *Builder[A]) NewEntities(count int, a A) []Entity {
	if count <= 0 {
		return nil
	}
	b.world.reserveRows(b.arch, count)
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.NewEntity(a)
	}
	return ents
}

// reserveRows makes room for extra more entities in the entity table and in
// a, so a batch of spawns allocates at most once.
func (w *World) reserveRows(a *archetype, extra int) {
	w.entities.reserve(len(w.entities.records) + extra)
	if need := a.size() + extra; need > a.shape.capacity {
		before := a.shape.capacity
		a.resize(need)
		w.noteGrowth(a, before)
	}
}

// Builder2 creates entities that start out holding an A and a B.
type Builder2[A, B any] struct {
	world *World
	arch  *archetype
	posA  int
	posB  int
}

// NewBuilder2 creates a Builder2 for entities holding A and B.
func NewBuilder2[A, B any](w *World) *Builder2[A, B] {
	idA := ComponentIDOf[A](w)
	idB := ComponentIDOf[B](w)
	arch := w.archetypeFor(NewKind(idA, idB))
	b := &Builder2[A, B]{world: w, arch: arch}
	b.posA, _ = w.index.column(arch, idA)
	b.posB, _ = w.index.column(arch, idB)
	return b
}

// NewEntity creates one entity holding a and b.
func (b *Builder2[A, B]) NewEntity(a A, bv B) Entity {
	e, row := b.world.spawn(b.arch)
	*typedColumnAt[A](b.arch, b.posA).get(row) = a
	*typedColumnAt[B](b.arch, b.posB).get(row) = bv
	return e
}

// NewEntities creates count entities, each holding copies of a and bv.
func (b *Builder2[A, B]) NewEntities(count int, a A, bv B) []Entity {
	if count <= 0 {
		return nil
	}
	b.world.reserveRows(b.arch, count)
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.NewEntity(a, bv)
	}
	return ents
}

// Builder3 creates entities that start out holding an A, a B and a C.
type Builder3[A, B, C any] struct {
	world *World
	arch  *archetype
	posA  int
	posB  int
	posC  int
}

// NewBuilder3 creates a Builder3 for entities holding A, B and C.
func NewBuilder3[A, B, C any](w *World) *Builder3[A, B, C] {
	idA := ComponentIDOf[A](w)
	idB := ComponentIDOf[B](w)
	idC := ComponentIDOf[C](w)
	arch := w.archetypeFor(NewKind(idA, idB, idC))
	b := &Builder3[A, B, C]{world: w, arch: arch}
	b.posA, _ = w.index.column(arch, idA)
	b.posB, _ = w.index.column(arch, idB)
	b.posC, _ = w.index.column(arch, idC)
	return b
}

// NewEntity creates one entity holding a, b and c.
func (b *Builder3[A, B, C]) NewEntity(a A, bv B, c C) Entity {
	e, row := b.world.spawn(b.arch)
	*typedColumnAt[A](b.arch, b.posA).get(row) = a
	*typedColumnAt[B](b.arch, b.posB).get(row) = bv
	*typedColumnAt[C](b.arch, b.posC).get(row) = c
	return e
}

// NewEntities creates count entities, each holding copies of a, bv and c.
func (b *Builder3[A, B, C]) NewEntities(count int, a A, bv B, c C) []Entity {
	if count <= 0 {
		return nil
	}
	b.world.reserveRows(b.arch, count)
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.NewEntity(a, bv, c)
	}
	return ents
}
