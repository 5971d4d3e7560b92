package stitch

import (
	"reflect"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// archetypeRegistry owns every archetype of a World. Archetypes are never
// removed, so *archetype pointers held by records stay valid.
type archetypeRegistry struct {
	byID  map[ArchetypeID][]*archetype // hash bucket -> archetypes, exact Kind decides
	empty *archetype                   // the Kind{} archetype new entities start in
	all   []*archetype                 // indexed by archetype.index
}

// World is the storage engine: it allocates entities, owns every archetype,
// the per-type index and the Location Records.
//
// A World is not safe for concurrent use. Structural changes (creating or
// destroying entities, adding or removing components) while a View or Filter
// is being iterated have undefined results; buffer them and apply after the
// iteration.
type World struct {
	log               zerolog.Logger
	events            *EventBus
	components        componentRegistry
	archetypes        archetypeRegistry
	index             typeIndexes
	entities          entityRegistry
	archetypeCapacity int
}

// NewWorld creates an empty World.
//
// Parameters:
//   - opts: Functional options such as WithInitialCapacity or WithLogger.
//
// Returns:
//   - The newly created World.
func NewWorld(opts ...Option) *World {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.events == nil {
		o.events = &EventBus{}
	}
	w := &World{
		log:    o.logger,
		events: o.events,
		components: componentRegistry{
			typeToID: make(map[reflect.Type]ComponentID, 16),
		},
		archetypes: archetypeRegistry{
			byID: make(map[ArchetypeID][]*archetype, 16),
			all:  make([]*archetype, 0, 16),
		},
		entities:          newEntityRegistry(o.initialCapacity),
		archetypeCapacity: o.archetypeCapacity,
	}
	w.archetypes.empty = w.createArchetype(Kind{}, nil)
	return w
}

// Events returns the bus the World publishes lifecycle events on.
func (w *World) Events() *EventBus {
	return w.events
}

// CreateEntity creates a new entity with no components.
func (w *World) CreateEntity() Entity {
	e := w.entities.alloc()
	empty := w.archetypes.empty
	before := empty.shape.capacity
	row := empty.push(e, w.archetypeCapacity)
	w.noteGrowth(empty, before)
	rec := &w.entities.records[e.Slot()]
	rec.arch = empty
	rec.row = row
	Publish(w.events, EntityCreated{Entity: e})
	return e
}

// CreateEntities creates count entities with no components.
func (w *World) CreateEntities(count int) []Entity {
	if count <= 0 {
		return nil
	}
	w.entities.reserve(len(w.entities.records) + count)
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = w.CreateEntity()
	}
	return ents
}

// DestroyEntity removes e and every component it holds. Destroyer hooks run
// for each value; they must not modify the World. The slot is recycled with
// the next generation.
func (w *World) DestroyEntity(e Entity) error {
	rec := w.entities.lookup(e)
	if rec == nil {
		return eris.Wrapf(ErrEntityNotFound, "failed to destroy entity %v", e)
	}
	rec.arch.erase(rec.row, nil, &w.entities)
	w.entities.release(e)
	Publish(w.events, EntityDestroyed{Entity: e})
	return nil
}

// IsAlive reports whether e was created and not yet destroyed.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.lookup(e) != nil
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.live
}

// ArchetypeCount returns how many archetypes exist, including the empty one.
func (w *World) ArchetypeCount() int {
	return len(w.archetypes.all)
}

// KindOf returns a copy of the set of component types e holds.
func (w *World) KindOf(e Entity) (Kind, error) {
	rec := w.entities.lookup(e)
	if rec == nil {
		return nil, eris.Wrapf(ErrEntityNotFound, "failed to read kind of entity %v", e)
	}
	return slices.Clone(rec.arch.kind), nil
}

// HasAll reports whether e holds every one of ids. A dead entity holds
// nothing; with no ids the answer is true for a live entity.
func (w *World) HasAll(e Entity, ids ...ComponentID) bool {
	rec := w.entities.lookup(e)
	if rec == nil {
		return false
	}
	for _, id := range ids {
		if _, ok := w.index.column(rec.arch, id); !ok {
			return false
		}
	}
	return true
}

// HasAny reports whether e holds at least one of ids.
func (w *World) HasAny(e Entity, ids ...ComponentID) bool {
	rec := w.entities.lookup(e)
	if rec == nil {
		return false
	}
	for _, id := range ids {
		if _, ok := w.index.column(rec.arch, id); ok {
			return true
		}
	}
	return false
}

// RemoveComponentID detaches the component registered under id from e. It is
// the untyped form of RemoveComponent for callers that only hold a
// ComponentID.
func (w *World) RemoveComponentID(e Entity, id ComponentID) error {
	rec := w.entities.lookup(e)
	if rec == nil {
		return eris.Wrapf(ErrEntityNotFound, "failed to remove component from entity %v", e)
	}
	if _, ok := w.index.column(rec.arch, id); !ok {
		return eris.Wrapf(ErrComponentNotPresent, "entity %v has no component %d", e, id)
	}
	w.move(rec, w.withoutComponent(rec.arch, id), true)
	return nil
}

// Reserve grows the entity table to hold n entities without reallocation.
func (w *World) Reserve(n int) {
	w.entities.reserve(n)
}

// Clear destroys every live entity. Destroyer hooks run once per value and
// every slot is recycled with the next generation. Archetypes and their
// buffers are kept.
func (w *World) Clear() {
	destroyed := w.entities.live
	for _, a := range w.archetypes.all {
		a.clear()
	}
	for i := range w.entities.records {
		rec := &w.entities.records[i]
		if rec.arch == nil {
			continue
		}
		e := rec.id
		w.entities.release(e)
		Publish(w.events, EntityDestroyed{Entity: e})
	}
	w.log.Debug().Int("entities", destroyed).Msg("world cleared")
}

// Repack shrinks every archetype's buffers to its current size. Empty
// archetypes release their buffers entirely and reallocate on next use.
func (w *World) Repack() {
	freed := 0
	for _, a := range w.archetypes.all {
		if a.shape.capacity > a.size() {
			freed += a.shape.capacity - a.size()
			a.resize(a.size())
		}
	}
	w.log.Debug().Int("rows_freed", freed).Msg("archetypes repacked")
}

// LogArchetypes writes one event per archetype at level.
func (w *World) LogArchetypes(level zerolog.Level) {
	for _, a := range w.archetypes.all {
		w.log.WithLevel(level).
			Uint64("archetype_id", uint64(a.id)).
			Uint32("archetype_index", a.index).
			Array("kind", w.kindArray(a.kind)).
			Int("size", a.size()).
			Int("capacity", a.shape.capacity).
			Msg("archetype")
	}
}

// LogEntity writes e's archetype and component values at level.
func (w *World) LogEntity(level zerolog.Level, e Entity) error {
	rec := w.entities.lookup(e)
	if rec == nil {
		return eris.Wrapf(ErrEntityNotFound, "failed to log entity %v", e)
	}
	values := zerolog.Dict()
	for i, c := range rec.arch.columns {
		values = values.Interface(w.components.infos[rec.arch.kind[i]].typ.String(), c.value(rec.row))
	}
	w.log.WithLevel(level).
		Stringer("entity", e).
		Uint64("archetype_id", uint64(rec.arch.id)).
		Int("row", rec.row).
		Dict("components", values).
		Msg("entity")
	return nil
}

func (w *World) kindArray(k Kind) *zerolog.Array {
	arr := zerolog.Arr()
	for _, id := range k {
		arr = arr.Str(w.components.infos[id].typ.String())
	}
	return arr
}

// lookupArchetype finds the archetype for kind by hash bucket and exact match.
func (w *World) lookupArchetype(kind Kind) *archetype {
	for _, a := range w.archetypes.byID[kind.ID()] {
		if a.kind.Equal(kind) {
			return a
		}
	}
	return nil
}

// archetypeFor returns the archetype for kind, creating it from the component
// registry when missing. No transition edges are linked.
func (w *World) archetypeFor(kind Kind) *archetype {
	if a := w.lookupArchetype(kind); a != nil {
		return a
	}
	return w.createArchetype(kind, nil)
}

// createArchetype builds the archetype for kind. Columns for types that src
// also stores are duplicated from src's layout; the rest are built from the
// component registry. Every column is linked into the type index.
func (w *World) createArchetype(kind Kind, src *archetype) *archetype {
	a := newArchetype(uint32(len(w.archetypes.all)), kind, 0)
	for pos, id := range kind {
		var c column
		if src != nil {
			if j, ok := w.index.column(src, id); ok {
				c = src.columns[j].dupe(a.shape)
			}
		}
		if c == nil {
			c = w.components.infos[id].newColumn(a.shape)
		}
		a.columns = append(a.columns, c)
		w.index.link(a, id, pos)
	}
	w.archetypes.all = append(w.archetypes.all, a)
	w.archetypes.byID[a.id] = append(w.archetypes.byID[a.id], a)
	if n := len(w.archetypes.byID[a.id]); n > 1 {
		w.log.Warn().Uint64("archetype_id", uint64(a.id)).Int("bucket", n).Msg("archetype id collision")
	}
	w.log.Debug().
		Uint64("archetype_id", uint64(a.id)).
		Uint32("archetype_index", a.index).
		Array("kind", w.kindArray(kind)).
		Msg("archetype created")
	Publish(w.events, ArchetypeCreated{ID: a.id, Kind: slices.Clone(kind)})
	return a
}

// withComponent resolves the archetype reached from src by adding id, caching
// the edge in both directions.
func (w *World) withComponent(src *archetype, id ComponentID) *archetype {
	if dst, ok := src.add.Get(id); ok {
		return dst
	}
	kind := src.kind.with(id)
	dst := w.lookupArchetype(kind)
	if dst == nil {
		dst = w.createArchetype(kind, src)
	}
	src.add.Put(id, dst)
	dst.remove.Put(id, src)
	return dst
}

// withoutComponent resolves the archetype reached from src by removing id.
func (w *World) withoutComponent(src *archetype, id ComponentID) *archetype {
	if dst, ok := src.remove.Get(id); ok {
		return dst
	}
	kind := src.kind.without(id)
	dst := w.lookupArchetype(kind)
	if dst == nil {
		dst = w.createArchetype(kind, src)
	}
	src.remove.Put(id, dst)
	dst.add.Put(id, src)
	return dst
}

// move transfers the entity behind rec into dst and updates rec. It returns
// the column position of the type that still needs a value, or -1.
func (w *World) move(rec *record, dst *archetype, removing bool) int {
	before := dst.shape.capacity
	row, fresh := dst.steal(rec.arch, rec.row, w.index, &w.entities, removing, w.archetypeCapacity)
	w.noteGrowth(dst, before)
	rec.arch = dst
	rec.row = row
	return fresh
}

// spawn creates an entity directly in a, skipping intermediate archetypes.
// The caller fills every column at the returned row.
func (w *World) spawn(a *archetype) (Entity, int) {
	e := w.entities.alloc()
	before := a.shape.capacity
	row := a.push(e, w.archetypeCapacity)
	w.noteGrowth(a, before)
	rec := &w.entities.records[e.Slot()]
	rec.arch = a
	rec.row = row
	Publish(w.events, EntityCreated{Entity: e})
	return e, row
}

func (w *World) noteGrowth(a *archetype, before int) {
	if a.shape.capacity == before {
		return
	}
	w.log.Debug().
		Uint64("archetype_id", uint64(a.id)).
		Int("capacity", a.shape.capacity).
		Msg("archetype grown")
}
