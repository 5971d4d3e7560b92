package stitch

import "strconv"

// GenerationStride is added to an entity's value each time its slot is
// recycled, so a reused slot never produces a value equal to one of its
// predecessors (until the 32-bit generation wraps).
const GenerationStride Entity = 1 << 32

// Entity is an opaque identifier for a bag of components. The low 32 bits name
// a slot in the World's entity table; the high 32 bits count how many times
// that slot has been recycled. Slot 0 is never issued, so the zero Entity is
// never alive.
type Entity uint64

// Slot returns the entity table index of e.
func (e Entity) Slot() uint32 {
	return uint32(e)
}

// Generation returns how many times e's slot was recycled before e was issued.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.Slot()), 10) + "v" + strconv.FormatUint(uint64(e.Generation()), 10)
}

// record is the Location Record of one entity: the archetype holding its data
// and its row there. A record with a nil arch is a free slot.
type record struct {
	arch *archetype
	row  int
	id   Entity
}

// entityRegistry allocates entity values and owns every Location Record.
type entityRegistry struct {
	records []record // indexed by Entity.Slot
	freeIDs []Entity // recycled values, generation offset already applied
	live    int
}

// newEntityRegistry returns a registry whose slot 0 holds a permanently dead
// record.
func newEntityRegistry(capacity int) entityRegistry {
	records := make([]record, 1, max(capacity, 1))
	records[0] = record{row: -1}
	return entityRegistry{records: records}
}

// alloc pops a recycled value, or mints a new slot when none is available.
func (r *entityRegistry) alloc() Entity {
	if n := len(r.freeIDs); n > 0 {
		e := r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
		r.records[e.Slot()].id = e
		r.live++
		return e
	}
	e := Entity(len(r.records))
	r.records = append(r.records, record{id: e, row: -1})
	r.live++
	return e
}

// release invalidates e's record and queues the slot for reuse.
func (r *entityRegistry) release(e Entity) {
	rec := &r.records[e.Slot()]
	rec.arch = nil
	rec.row = -1
	r.freeIDs = append(r.freeIDs, e+GenerationStride)
	r.live--
}

// lookup returns the record for e, or nil if e is not alive.
func (r *entityRegistry) lookup(e Entity) *record {
	slot := int(e.Slot())
	if slot >= len(r.records) {
		return nil
	}
	rec := &r.records[slot]
	if rec.arch == nil || rec.id != e {
		return nil
	}
	return rec
}

// reserve grows the record table so that n slots fit without reallocation.
func (r *entityRegistry) reserve(n int) {
	if cap(r.records) >= n {
		return
	}
	grown := make([]record, len(r.records), n)
	copy(grown, r.records)
	r.records = grown
}
