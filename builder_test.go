package stitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	w := NewWorld()
	b := NewBuilder[Position](w)

	e := b.NewEntity(Position{1, 2})
	pos, err := GetComponent[Position](w, e)
	require.NoError(t, err)
	assert.Equal(t, Position{1, 2}, *pos)

	// empty and {Position}; no intermediate archetypes
	assert.Equal(t, 2, w.ArchetypeCount())
	checkStorage(t, w)
}

func TestBuilderNewEntities(t *testing.T) {
	w := NewWorld()
	b := NewBuilder[Foo](w)
	assert.Nil(t, b.NewEntities(0, Foo{}))

	ents := b.NewEntities(100, Foo{9})
	require.Len(t, ents, 100)
	assert.Equal(t, 100, w.Len())
	assert.GreaterOrEqual(t, b.arch.shape.capacity, 100)
	for _, e := range ents {
		foo, err := GetComponent[Foo](w, e)
		require.NoError(t, err)
		assert.Equal(t, 9, foo.N)
	}
	checkStorage(t, w)
}

func TestBuilderSharesArchetypeWithTransitions(t *testing.T) {
	w := NewWorld()
	built := NewBuilder2[Foo, Bar](w).NewEntity(Foo{1}, Bar{2})

	moved := w.CreateEntity()
	_, err := AddComponent(w, moved, Bar{})
	require.NoError(t, err)
	_, err = AddComponent(w, moved, Foo{})
	require.NoError(t, err)

	assert.Same(t, w.entities.lookup(built).arch, w.entities.lookup(moved).arch)

	require.NoError(t, RemoveComponent[Bar](w, built))
	foo, err := GetComponent[Foo](w, built)
	require.NoError(t, err)
	assert.Equal(t, 1, foo.N)
	checkStorage(t, w)
}

func TestBuilder3(t *testing.T) {
	w := NewWorld()
	e := NewBuilder3[Position, Velocity, Foo](w).NewEntity(Position{1, 1}, Velocity{2, 2}, Foo{3})

	assert.True(t, w.HasAll(e, ComponentIDOf[Position](w), ComponentIDOf[Velocity](w), ComponentIDOf[Foo](w)))
	foo, err := GetComponent[Foo](w, e)
	require.NoError(t, err)
	assert.Equal(t, 3, foo.N)
}
