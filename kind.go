package stitch

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// ComponentID is the per-World identifier of a component type. IDs are handed
// out in registration order, starting at zero.
type ComponentID uint32

// Kind is the sorted, duplicate-free set of component types an entity holds.
// Every distinct Kind is stored in exactly one archetype.
type Kind []ComponentID

// ArchetypeID is a hash of a Kind. Equal Kinds always hash equal; unequal Kinds
// may collide, so the World only uses it to bucket archetypes and always
// confirms the exact Kind.
type ArchetypeID uint64

// NewKind builds a Kind from ids in any order. Duplicates are dropped.
func NewKind(ids ...ComponentID) Kind {
	k := make(Kind, len(ids))
	copy(k, ids)
	slices.Sort(k)
	return slices.Compact(k)
}

// ID returns the archetype key for k. The hash is order-sensitive, which is
// safe because a Kind is always sorted.
func (k Kind) ID() ArchetypeID {
	buf := make([]byte, 0, 4+4*len(k))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(k)))
	for _, id := range k {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(id))
	}
	return ArchetypeID(xxhash.Sum64(buf))
}

// Has reports whether id is part of k.
func (k Kind) Has(id ComponentID) bool {
	_, ok := slices.BinarySearch(k, id)
	return ok
}

// Contains reports whether every element of sub is also in k. Both sides must
// be sorted; the test is a single merge pass.
func (k Kind) Contains(sub Kind) bool {
	i := 0
	for _, id := range sub {
		for i < len(k) && k[i] < id {
			i++
		}
		if i == len(k) || k[i] != id {
			return false
		}
		i++
	}
	return true
}

// Equal reports whether k and other hold the same component types.
func (k Kind) Equal(other Kind) bool {
	return slices.Equal(k, other)
}

// with returns a copy of k with id inserted in sorted position.
func (k Kind) with(id ComponentID) Kind {
	pos, found := slices.BinarySearch(k, id)
	if found {
		return slices.Clone(k)
	}
	out := make(Kind, 0, len(k)+1)
	out = append(out, k[:pos]...)
	out = append(out, id)
	return append(out, k[pos:]...)
}

// without returns a copy of k with id removed.
func (k Kind) without(id ComponentID) Kind {
	out := make(Kind, 0, len(k))
	for _, c := range k {
		if c != id {
			out = append(out, c)
		}
	}
	return out
}
