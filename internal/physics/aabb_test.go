package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(vec(1, 2, 3), vec(2, 4, 6))

	assert.Equal(t, vec(0, 0, 0), box.Min)
	assert.Equal(t, vec(2, 4, 6), box.Max)
	assert.Equal(t, vec(1, 2, 3), box.Center())
	assert.Equal(t, vec(2, 4, 6), box.Dimensions())
	assert.InDelta(t, 0.5*7.4833147, box.Radius(), 1e-5)
}

func TestAABBEmptyExpand(t *testing.T) {
	box := EmptyAABB()
	assert.True(t, box.IsEmpty())

	box.ExpandToInclude(EmptyAABB())
	assert.True(t, box.IsEmpty(), "empty boxes add nothing")

	box.ExpandToIncludePoint(vec(1, 1, 1))
	assert.False(t, box.IsEmpty())
	assert.Equal(t, box.Min, box.Max)

	box.ExpandToInclude(NewAABBFromCenter(vec(-2, 0, 0), vec(2, 2, 2)))
	assert.Equal(t, vec(-3, -1, -1), box.Min)
	assert.Equal(t, vec(1, 1, 1), box.Max)
}

func TestAABBMoveIntersectContains(t *testing.T) {
	a := NewAABBFromCenter(vec(0, 0, 0), vec(2, 2, 2))
	b := NewAABBFromCenter(vec(2, 0, 0), vec(2, 2, 2))

	assert.True(t, a.Intersects(b), "shared face")
	assert.True(t, b.Intersects(a))

	b.Move(vec(0.5, 0, 0))
	assert.False(t, a.Intersects(b))
	assert.Equal(t, vec(1.5, -1, -1), b.Min)

	assert.True(t, a.Contains(vec(1, 1, 1)))
	assert.False(t, a.Contains(vec(1.01, 0, 0)))

	bb := a.BoundingBox()
	assert.Equal(t, a.Min, bb.Min)
	assert.Equal(t, a.Max, bb.Max)
}
