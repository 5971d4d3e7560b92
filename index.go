package stitch

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/kamstrup/intmap"
)

// typeIndex answers "which archetypes store this type, and in which column"
// without scanning Kinds. Archetypes are keyed by their creation index.
type typeIndex struct {
	columns    *intmap.Map[uint32, int]
	archetypes *roaring.Bitmap
}

// typeIndexes is indexed by ComponentID.
type typeIndexes []typeIndex

// ensure grows the index so that id has an entry.
func (x *typeIndexes) ensure(id ComponentID) {
	for ComponentID(len(*x)) <= id {
		*x = append(*x, typeIndex{
			columns:    intmap.New[uint32, int](8),
			archetypes: roaring.New(),
		})
	}
}

// link records that column pos of a stores id.
func (x *typeIndexes) link(a *archetype, id ComponentID, pos int) {
	x.ensure(id)
	entry := &(*x)[id]
	entry.columns.Put(a.index, pos)
	entry.archetypes.Add(a.index)
}

// column returns the position of id within a's columns.
func (x typeIndexes) column(a *archetype, id ComponentID) (int, bool) {
	if int(id) >= len(x) {
		return 0, false
	}
	return x[id].columns.Get(a.index)
}

// holders returns the set of archetypes storing id. The bitmap is owned by the
// index; callers must clone before mutating it.
func (x typeIndexes) holders(id ComponentID) *roaring.Bitmap {
	if int(id) >= len(x) {
		return nil
	}
	return x[id].archetypes
}
