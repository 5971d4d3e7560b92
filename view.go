package stitch

// View enumerates every live entity whose Kind contains all required types and
// none of the excluded ones. It walks the matching archetypes in creation
// order and the rows of each archetype in storage order.
//
// A View reads live archetype state and takes no snapshot: creating or
// destroying entities, or adding or removing components, while iterating has
// undefined results.
type View struct {
	world      *World
	required   Kind
	excluded   Kind
	archetypes []*archetype
	match      int // cursor into archetypes
	row        int // cursor into the current archetype's rows
}

// NewView creates a View over w.
//
// Parameters:
//   - w: The World to query.
//   - required: Component types every yielded entity must hold.
//   - excluded: Component types no yielded entity may hold.
//
// Returns:
//   - A View positioned before the first match.
func NewView(w *World, required []ComponentID, excluded ...ComponentID) *View {
	v := &View{
		world:    w,
		required: NewKind(required...),
		excluded: NewKind(excluded...),
	}
	v.Reset()
	return v
}

// Reset rediscovers the matching, non-empty archetypes and rewinds the
// cursor. Call it before reusing a View after structural changes.
func (v *View) Reset() {
	v.discover()
	v.match = 0
	v.row = -1
}

// discover intersects the per-type archetype sets of every required type and
// subtracts those of the excluded types. Empty archetypes are skipped.
func (v *View) discover() {
	v.archetypes = v.archetypes[:0]
	w := v.world
	if len(v.required) == 0 {
		for _, a := range w.archetypes.all {
			if a.size() > 0 && !v.excludes(a) {
				v.archetypes = append(v.archetypes, a)
			}
		}
		return
	}
	first := w.index.holders(v.required[0])
	if first == nil {
		return
	}
	candidates := first.Clone()
	for _, id := range v.required[1:] {
		h := w.index.holders(id)
		if h == nil {
			return
		}
		candidates.And(h)
	}
	for _, id := range v.excluded {
		if h := w.index.holders(id); h != nil {
			candidates.AndNot(h)
		}
	}
	it := candidates.Iterator()
	for it.HasNext() {
		if a := w.archetypes.all[it.Next()]; a.size() > 0 {
			v.archetypes = append(v.archetypes, a)
		}
	}
}

func (v *View) excludes(a *archetype) bool {
	for _, id := range v.excluded {
		if a.kind.Has(id) {
			return true
		}
	}
	return false
}

// Next advances to the next matching entity and reports whether there is one.
//
// Example:
//
//	view := stitch.NewView(world, []stitch.ComponentID{posID})
//	for view.Next() {
//	    pos := stitch.Get[Position](view)
//	    // ...
//	}
func (v *View) Next() bool {
	v.row++
	for v.match < len(v.archetypes) {
		if v.row < v.archetypes[v.match].size() {
			return true
		}
		v.match++
		v.row = 0
	}
	return false
}

// Entity returns the entity at the cursor. Only valid after Next returned
// true.
func (v *View) Entity() Entity {
	return v.archetypes[v.match].entities[v.row]
}

// Len returns how many entities the View yields in total.
func (v *View) Len() int {
	n := 0
	for _, a := range v.archetypes {
		n += a.size()
	}
	return n
}

// Entities returns every matching entity in iteration order.
func (v *View) Entities() []Entity {
	out := make([]Entity, 0, v.Len())
	for _, a := range v.archetypes {
		out = append(out, a.entities...)
	}
	return out
}

// DestroyEntities destroys every matching entity and returns how many were
// destroyed. The View is reset afterwards and yields nothing.
func (v *View) DestroyEntities() int {
	victims := v.Entities()
	for _, e := range victims {
		// Every victim was alive when collected and destroying one never
		// destroys another.
		if err := v.world.DestroyEntity(e); err != nil {
			panic("stitch: view yielded a dead entity: " + err.Error())
		}
	}
	v.Reset()
	return len(victims)
}

// current returns the archetype and row under the cursor.
func (v *View) current() (*archetype, int) {
	return v.archetypes[v.match], v.row
}

// Get returns the T component of the entity at v's cursor, or nil when the
// current entity holds no T.
func Get[T any](v *View) *T {
	a, row := v.current()
	id, ok := LookupComponentID[T](v.world)
	if !ok {
		return nil
	}
	pos, ok := v.world.index.column(a, id)
	if !ok {
		return nil
	}
	return typedColumnAt[T](a, pos).get(row)
}
