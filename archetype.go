package stitch

import "github.com/kamstrup/intmap"

// archetype stores every live entity whose Kind equals kind. Its columns run
// parallel to kind and share one shape, so they always have the same length
// and capacity. entities is the reverse index: entities[row] owns that row.
type archetype struct {
	shape    *shape
	add      *intmap.Map[ComponentID, *archetype] // cached "with one more type" edges
	remove   *intmap.Map[ComponentID, *archetype] // cached "with one type less" edges
	kind     Kind
	columns  []column
	entities []Entity
	id       ArchetypeID
	index    uint32 // creation order, unique within the World
}

func newArchetype(index uint32, kind Kind, capacity int) *archetype {
	return &archetype{
		id:       kind.ID(),
		index:    index,
		kind:     kind,
		shape:    &shape{capacity: capacity},
		columns:  make([]column, 0, len(kind)),
		entities: make([]Entity, 0, capacity),
		add:      intmap.New[ComponentID, *archetype](4),
		remove:   intmap.New[ComponentID, *archetype](4),
	}
}

// size returns the number of occupied rows.
func (a *archetype) size() int {
	return a.shape.size
}

// reserve makes room for one more row, doubling every column when full.
func (a *archetype) reserve(minCapacity int) {
	if a.shape.size < a.shape.capacity {
		return
	}
	a.resize(max(a.shape.capacity*2, minCapacity, 1))
}

// resize reallocates every column to capacity slots. Occupied rows keep their
// order. capacity must not be below the current size.
func (a *archetype) resize(capacity int) {
	for _, c := range a.columns {
		c.resize(capacity)
	}
	entities := make([]Entity, len(a.entities), capacity)
	copy(entities, a.entities)
	a.entities = entities
	a.shape.capacity = capacity
}

// push appends e as a new row whose column slots hold zero values.
func (a *archetype) push(e Entity, minCapacity int) int {
	a.reserve(minCapacity)
	row := a.shape.size
	a.entities = append(a.entities, e)
	a.shape.size++
	return row
}

// steal moves the entity at src's row into a new row of a, then compacts src.
// Types present in both archetypes are moved; the single type only a stores
// (an add transition) is reported through fresh so the caller can construct
// it. fresh is -1 when there is no such type. removing marks a remove
// transition, where a fresh slot would be a bug.
func (a *archetype) steal(src *archetype, row int, index typeIndexes, records *entityRegistry, removing bool, minCapacity int) (newRow, fresh int) {
	e := src.entities[row]
	newRow = a.push(e, minCapacity)
	fresh = -1
	for i, c := range a.columns {
		if j, ok := index.column(src, a.kind[i]); ok {
			c.moveFrom(src.columns[j], row, newRow)
			continue
		}
		if removing || fresh >= 0 {
			panic("stitch: unexpected new column in archetype transition")
		}
		fresh = i
	}
	src.erase(row, a, records)
	return newRow, fresh
}

// erase removes row from every column and from the reverse index. When row
// was not the last row, the entity from the last row now lives at row and its
// record is corrected. Values whose type also lives in dst were moved there
// and are released without running their Destroyer hook.
func (a *archetype) erase(row int, dst *archetype, records *entityRegistry) {
	for i, c := range a.columns {
		c.erase(row, dst == nil || !dst.kind.Has(a.kind[i]))
	}
	last := a.shape.size - 1
	if row < last {
		moved := a.entities[last]
		a.entities[row] = moved
		records.records[moved.Slot()].row = row
	}
	a.entities = a.entities[:last]
	a.shape.size--
}

// swapRows exchanges two rows across every column and fixes both records.
func (a *archetype) swapRows(i, j int, records *entityRegistry) {
	if i == j {
		return
	}
	for _, c := range a.columns {
		c.swap(i, j)
	}
	a.entities[i], a.entities[j] = a.entities[j], a.entities[i]
	records.records[a.entities[i].Slot()].row = i
	records.records[a.entities[j].Slot()].row = j
}

// clear finalizes every value and empties the archetype, keeping its buffers.
func (a *archetype) clear() {
	for _, c := range a.columns {
		c.destroyAll()
	}
	a.entities = a.entities[:0]
	a.shape.size = 0
}

// typedColumnAt returns column pos of a as storage for T.
func typedColumnAt[T any](a *archetype, pos int) *typedColumn[T] {
	c, ok := a.columns[pos].(*typedColumn[T])
	if !ok {
		panic("stitch: column element type mismatch")
	}
	return c
}
