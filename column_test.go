package stitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tracked counts how many of its values reached the end of their life.
type tracked struct {
	destroyed *int
	Value     int
}

func (c *tracked) Destroy() {
	*c.destroyed++
}

func fillColumn(s *shape, values ...int) (*typedColumn[tracked], *int) {
	destroyed := new(int)
	s.capacity = len(values)
	c := newTypedColumn[tracked](0, s)
	for i, v := range values {
		c.data[i] = tracked{destroyed: destroyed, Value: v}
	}
	s.size = len(values)
	return c, destroyed
}

func columnValues(c *typedColumn[tracked]) []int {
	out := make([]int, c.shape.size)
	for i := range out {
		out[i] = c.get(i).Value
	}
	return out
}

func TestColumnEraseSwapsLastIntoHole(t *testing.T) {
	s := &shape{}
	c, destroyed := fillColumn(s, 10, 20, 30, 40)

	c.erase(1, true)
	s.size--

	assert.Equal(t, []int{10, 40, 30}, columnValues(c))
	assert.Equal(t, 1, *destroyed)
	assert.Equal(t, tracked{}, c.data[3], "vacated slot must be zeroed")
}

func TestColumnEraseLastRow(t *testing.T) {
	s := &shape{}
	c, destroyed := fillColumn(s, 1, 2, 3)

	c.erase(2, true)
	s.size--

	assert.Equal(t, []int{1, 2}, columnValues(c))
	assert.Equal(t, 1, *destroyed)
}

func TestColumnEraseWithoutDestroy(t *testing.T) {
	s := &shape{}
	c, destroyed := fillColumn(s, 1, 2, 3)

	c.erase(0, false)
	s.size--

	assert.Equal(t, []int{3, 2}, columnValues(c))
	assert.Zero(t, *destroyed)
}

func TestColumnMoveFrom(t *testing.T) {
	src, _ := fillColumn(&shape{}, 7, 8)
	dstShape := &shape{capacity: 2}
	dst := src.dupe(dstShape).(*typedColumn[tracked])

	dst.moveFrom(src, 1, 0)
	assert.Equal(t, 8, dst.get(0).Value)
	assert.Equal(t, 8, src.get(1).Value, "source slot is released by its owner, not by the move")
}

func TestColumnMoveFromWrongType(t *testing.T) {
	s := &shape{capacity: 1}
	ints := newTypedColumn[int](0, s)
	floats := newTypedColumn[float64](1, s)
	assert.Panics(t, func() { ints.moveFrom(floats, 0, 0) })
}

func TestColumnDupeIsEmptyAndBoundToNewShape(t *testing.T) {
	src, _ := fillColumn(&shape{}, 1, 2, 3)
	s := &shape{capacity: 5}

	d := src.dupe(s).(*typedColumn[tracked])
	assert.Same(t, s, d.shape)
	assert.Len(t, d.data, 5)
	assert.Equal(t, src.component(), d.component())
	for _, v := range d.data {
		assert.Zero(t, v.Value)
	}
}

func TestColumnResizeKeepsRows(t *testing.T) {
	s := &shape{}
	c, _ := fillColumn(s, 4, 5, 6)

	c.resize(8)
	s.capacity = 8

	require.Len(t, c.data, 8)
	assert.Equal(t, []int{4, 5, 6}, columnValues(c))
}

func TestColumnDestroyAll(t *testing.T) {
	s := &shape{}
	c, destroyed := fillColumn(s, 1, 2, 3, 4)

	c.destroyAll()
	assert.Equal(t, 4, *destroyed)
}

func TestColumnValueBoxesPointer(t *testing.T) {
	s := &shape{capacity: 1, size: 1}
	c := newTypedColumn[int](0, s)
	*c.value(0).(*int) = 42
	assert.Equal(t, 42, c.data[0])
}
