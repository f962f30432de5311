package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRect_ClampsNegativeDimensions(t *testing.T) {
	r := NewRect(10, 20, -5, -1)
	assert.Equal(t, float32(0), r.Width)
	assert.Equal(t, float32(0), r.Height)
	assert.Equal(t, float32(10), r.X, "origin is preserved")
}

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	assert.Equal(t, float32(110), r.Right())
	assert.Equal(t, float32(70), r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, float32(60), cx)
	assert.Equal(t, float32(45), cy)
}

func TestRect_Contains(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	assert.True(t, outer.Contains(NewRect(10, 10, 50, 50)))
	assert.True(t, outer.Contains(outer), "a rect contains itself")
	assert.False(t, outer.Contains(NewRect(60, 60, 50, 50)), "overhangs right/bottom")
	assert.False(t, outer.Contains(NewRect(-1, 0, 10, 10)), "overhangs left")
}

func TestRect_Intersects(t *testing.T) {
	a := NewRect(0, 0, 100, 100)

	assert.True(t, a.Intersects(NewRect(50, 50, 100, 100)))
	assert.False(t, a.Intersects(NewRect(100, 0, 50, 50)), "touching edges do not overlap")
	assert.False(t, a.Intersects(NewRect(200, 200, 10, 10)))
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 100, 100)
	b := NewRect(60, 40, 100, 100)

	got := a.Intersect(b)
	assert.Equal(t, NewRect(60, 40, 40, 60), got)

	assert.True(t, a.Intersect(NewRect(200, 200, 10, 10)).Empty(), "disjoint rects intersect to empty")
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(0, 0, 100, 60)
	got := r.Inset(NewInsets(10, 5, 10, 5))

	assert.Equal(t, NewRect(5, 10, 90, 40), got)
}

func TestRect_Inset_CollapsesWhenTooSmall(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	got := r.Inset(UniformInsets(20))

	assert.True(t, got.Empty(), "insets larger than the rect collapse it to empty")
	assert.Equal(t, float32(0), got.Width)
	assert.Equal(t, float32(0), got.Height)
}

func TestNewInsets_ClampsNegative(t *testing.T) {
	in := NewInsets(-1, 5, -3, 2)
	assert.Equal(t, Insets{Top: 0, Right: 5, Bottom: 0, Left: 2}, in)
}

func TestInsets_Totals(t *testing.T) {
	in := NewInsets(44, 0, 34, 0)
	assert.Equal(t, float32(0), in.Horizontal())
	assert.Equal(t, float32(78), in.Vertical())
	assert.False(t, in.Zero())
	assert.True(t, Insets{}.Zero())
}

func TestInsets_Add(t *testing.T) {
	sum := NewInsets(1, 2, 3, 4).Add(UniformInsets(10))
	assert.Equal(t, Insets{Top: 11, Right: 12, Bottom: 13, Left: 14}, sum)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(5, 0, 10))
	assert.Equal(t, float32(0), Clamp(-3, 0, 10))
	assert.Equal(t, float32(10), Clamp(42, 0, 10))
	// Inverted range: element larger than the available span anchors to lo.
	assert.Equal(t, float32(8), Clamp(100, 8, 4))
}
