package stitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// EventBus test event
type TestEvent struct {
	Value int
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &EventBus{}
	received := 0
	Subscribe(bus, func(e TestEvent) {
		received += e.Value
	})
	Subscribe(bus, func(e TestEvent) {
		received += e.Value * 2
	})
	Publish(bus, TestEvent{Value: 1})
	assert.Equal(t, 3, received)
	Publish(bus, TestEvent{Value: 2})
	assert.Equal(t, 3+6, received)
	assert.Equal(t, 2, Subscribers[TestEvent](bus))
}

func TestEventBusMultipleTypes(t *testing.T) {
	bus := &EventBus{}
	received1 := 0
	received2 := 0
	Subscribe(bus, func(e TestEvent) {
		received1 += e.Value
	})
	Subscribe(bus, func(p Position) {
		received2 += int(p.X)
	})
	Publish(bus, TestEvent{Value: 42})
	Publish(bus, Position{X: 10})
	assert.Equal(t, 42, received1)
	assert.Equal(t, 10, received2)
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &EventBus{}
	assert.NotPanics(t, func() { Publish(bus, TestEvent{Value: 42}) })
	assert.Zero(t, Subscribers[TestEvent](bus))
}

func TestWorldPublishesLifecycleEvents(t *testing.T) {
	bus := &EventBus{}
	var created, destroyed []Entity
	var kinds []Kind
	Subscribe(bus, func(e EntityCreated) { created = append(created, e.Entity) })
	Subscribe(bus, func(e EntityDestroyed) { destroyed = append(destroyed, e.Entity) })
	Subscribe(bus, func(e ArchetypeCreated) { kinds = append(kinds, e.Kind) })

	w := NewWorld(WithEventBus(bus))
	assert.Same(t, bus, w.Events())
	require.Len(t, kinds, 1)
	assert.Empty(t, kinds[0])

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	_, err := AddComponent(w, e1, Foo{})
	require.NoError(t, err)
	_, err = AddComponent(w, e2, Foo{})
	require.NoError(t, err)
	require.Len(t, kinds, 2, "an archetype is announced once")
	assert.Equal(t, NewKind(ComponentIDOf[Foo](w)), kinds[1])

	require.NoError(t, w.DestroyEntity(e1))
	assert.Equal(t, []Entity{e1, e2}, created)
	assert.Equal(t, []Entity{e1}, destroyed)

	w.Clear()
	assert.Equal(t, []Entity{e1, e2}, destroyed)
}

func TestBuilderPublishesEntityCreated(t *testing.T) {
	w := NewWorld()
	count := 0
	Subscribe(w.Events(), func(EntityCreated) { count++ })

	NewBuilder[Foo](w).NewEntities(10, Foo{})
	assert.Equal(t, 10, count)
}
