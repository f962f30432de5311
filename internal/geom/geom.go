// Package geom provides the axis-aligned rectangle and edge-inset value types
// that every layout computation in StatDeck is expressed in. All values are
// immutable snapshots in the Fyne coordinate space (float32, origin top-left,
// y grows downward); operations return new values and never mutate.
package geom

// Rect is an axis-aligned rectangle. Width and Height are always
// non-negative; use NewRect to normalize untrusted input.
type Rect struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// NewRect builds a Rect, clamping negative dimensions to zero.
func NewRect(x, y, w, h float32) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (cx, cy float32) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether other lies entirely within r (edges may touch).
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// ContainsPoint reports whether the point (x, y) lies within r.
func (r Rect) ContainsPoint(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and other overlap. Rectangles that merely
// share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Intersect returns the overlapping region of r and other, or the zero Rect
// when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := maxf(r.X, other.X)
	y1 := maxf(r.Y, other.Y)
	x2 := minf(r.Right(), other.Right())
	y2 := minf(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Inset shrinks the rectangle by the given insets. A rectangle smaller than
// its insets collapses to zero size at the adjusted origin rather than going
// negative.
func (r Rect) Inset(in Insets) Rect {
	return NewRect(
		r.X+in.Left,
		r.Y+in.Top,
		r.Width-in.Left-in.Right,
		r.Height-in.Top-in.Bottom,
	)
}

// Insets describes reserved space at the four edges of a surface or
// container: notches, system bars, and any buffer the layout must avoid.
// All components are non-negative.
type Insets struct {
	Top    float32 `json:"top"`
	Right  float32 `json:"right"`
	Bottom float32 `json:"bottom"`
	Left   float32 `json:"left"`
}

// NewInsets builds an Insets value, clamping negative components to zero.
func NewInsets(top, right, bottom, left float32) Insets {
	return Insets{
		Top:    maxf(top, 0),
		Right:  maxf(right, 0),
		Bottom: maxf(bottom, 0),
		Left:   maxf(left, 0),
	}
}

// UniformInsets returns equal insets on all four edges.
func UniformInsets(v float32) Insets {
	return NewInsets(v, v, v, v)
}

// Add returns the component-wise sum of two inset sets.
func (in Insets) Add(other Insets) Insets {
	return Insets{
		Top:    in.Top + other.Top,
		Right:  in.Right + other.Right,
		Bottom: in.Bottom + other.Bottom,
		Left:   in.Left + other.Left,
	}
}

// Horizontal returns the total horizontal reservation (left + right).
func (in Insets) Horizontal() float32 { return in.Left + in.Right }

// Vertical returns the total vertical reservation (top + bottom).
func (in Insets) Vertical() float32 { return in.Top + in.Bottom }

// Zero reports whether all four components are zero.
func (in Insets) Zero() bool {
	return in.Top == 0 && in.Right == 0 && in.Bottom == 0 && in.Left == 0
}

// Clamp limits v to the inclusive range [lo, hi]. When the range is inverted
// (hi < lo, e.g. an element larger than the space it must fit in) the lower
// bound wins so content stays anchored to the leading edge.
func Clamp(v, lo, hi float32) float32 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
