// Package placement solves constrained positioning for floating elements:
// tooltips, dropdown menus, and modals that must land near a target
// rectangle without escaping the usable surface. Solving is a pure function
// of the request; nothing in this package observes geometry itself.
package placement

import (
	"github.com/statdeck/statdeck/internal/geom"
	"github.com/statdeck/statdeck/internal/surface"
)

// Side is a placement in the solver's vocabulary. Cardinal sides center the
// floating element along the target's perpendicular axis (tooltips);
// quadrant sides anchor it diagonally to the named corner of the target,
// extending away from the target in both named directions (menus).
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
	SideTopLeft
	SideTopRight
	SideBottomLeft
	SideBottomRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTopLeft:
		return "top-left"
	case SideTopRight:
		return "top-right"
	case SideBottomLeft:
		return "bottom-left"
	case SideBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// DefaultPreference is the placement order used when a request does not
// declare one: below the target first, then above, then beside.
var DefaultPreference = []Side{SideBottom, SideTop, SideRight, SideLeft}

// Size is the floating element's extent.
type Size struct {
	Width  float32
	Height float32
}

// Request describes one placement problem.
type Request struct {
	// Target is the trigger rectangle the element floats against, in
	// surface coordinates.
	Target geom.Rect
	// Size is the floating element's extent.
	Size Size
	// Surface is the snapshot to solve against.
	Surface surface.State
	// Preference is the ordered placement preference. Empty uses
	// DefaultPreference.
	Preference []Side
	// EdgeBuffer keeps the element this far from the usable surface edge.
	EdgeBuffer float32
	// Offset is extra distance between target and element along the
	// placement axis.
	Offset float32
}

// Result is a concrete position. When Fits is false no candidate fit and
// the position is the least-overflowing one; either way X and Y are always
// clamped inside the usable surface.
type Result struct {
	X    float32
	Y    float32
	Side Side
	Fits bool
}

// space is the available room between the target and the usable bounds in
// each cardinal direction.
type space struct {
	top, bottom, left, right float32
}

// Solve picks a position for the floating element described by req.
//
// The preference order is walked first and the first fitting candidate
// wins. When nothing fits, every preferred candidate is scored by the sum
// of available space in the directions its placement name implies and the
// roomiest one is returned with Fits=false; ties keep the earlier
// preference. The fallback deliberately scores only the requested sides,
// never the whole placement vocabulary: a caller that asked for
// bottom-then-top gets one of those two even in the overflow case, and
// tie-breaking by preference order is meaningless for sides the caller
// never ranked. The final coordinates are clamped into the usable surface
// unconditionally, so a caller always gets an on-surface position.
func Solve(req Request) Result {
	bounds := usableBounds(req.Surface, req.EdgeBuffer)
	avail := availableSpace(req.Target, bounds)

	prefs := req.Preference
	if len(prefs) == 0 {
		prefs = DefaultPreference
	}

	for _, side := range prefs {
		x, y := candidate(req, side)
		if candidateFits(req, side, avail, bounds, x, y) {
			return clampResult(Result{X: x, Y: y, Side: side, Fits: true}, req.Size, bounds)
		}
	}

	// Nothing fits: fall back to the candidate with the most room rather
	// than the first marginal fit, accepting overflow that the clamp below
	// corrects. A strict first-fit can pick a 1px squeeze at the far edge
	// over a slightly-overflowing but natural side.
	best := prefs[0]
	bestScore := spaceScore(best, avail)
	for _, side := range prefs[1:] {
		if score := spaceScore(side, avail); score > bestScore {
			best = side
			bestScore = score
		}
	}
	x, y := candidate(req, best)
	return clampResult(Result{X: x, Y: y, Side: best, Fits: false}, req.Size, bounds)
}

// SolveCentered positions a modal: centered on the usable surface and
// clamped, the degenerate single-candidate variant of Solve. Fits reports
// whether the element is fully contained after clamping.
func SolveCentered(size Size, s surface.State, edgeBuffer float32) Result {
	bounds := usableBounds(s, edgeBuffer)
	x := bounds.X + (bounds.Width-size.Width)/2
	y := bounds.Y + (bounds.Height-size.Height)/2

	res := clampResult(Result{X: x, Y: y, Side: SideBottom}, size, bounds)
	res.Fits = bounds.Contains(geom.NewRect(res.X, res.Y, size.Width, size.Height))
	return res
}

// usableBounds is the surface minus safe-area insets minus the edge buffer.
func usableBounds(s surface.State, edgeBuffer float32) geom.Rect {
	return s.SafeBounds().Inset(geom.UniformInsets(edgeBuffer))
}

// availableSpace measures the gap between the target and the usable bounds
// in each cardinal direction. Gaps are floored at zero; a target partly
// outside the bounds has no room on that side.
func availableSpace(target geom.Rect, bounds geom.Rect) space {
	return space{
		top:    maxf(target.Y-bounds.Y, 0),
		bottom: maxf(bounds.Bottom()-target.Bottom(), 0),
		left:   maxf(target.X-bounds.X, 0),
		right:  maxf(bounds.Right()-target.Right(), 0),
	}
}

// candidate computes the raw (pre-clamp) position for one placement.
func candidate(req Request, side Side) (x, y float32) {
	t := req.Target
	sz := req.Size
	cx, cy := t.Center()

	switch side {
	case SideTop:
		return cx - sz.Width/2, t.Y - sz.Height - req.Offset
	case SideBottom:
		return cx - sz.Width/2, t.Bottom() + req.Offset
	case SideLeft:
		return t.X - sz.Width - req.Offset, cy - sz.Height/2
	case SideRight:
		return t.Right() + req.Offset, cy - sz.Height/2
	case SideTopLeft:
		return t.X - sz.Width, t.Y - sz.Height - req.Offset
	case SideTopRight:
		return t.Right(), t.Y - sz.Height - req.Offset
	case SideBottomLeft:
		return t.X - sz.Width, t.Bottom() + req.Offset
	default: // SideBottomRight
		return t.Right(), t.Bottom() + req.Offset
	}
}

// candidateFits checks a candidate against the available space in its
// primary direction(s) and full containment on the perpendicular axis.
func candidateFits(req Request, side Side, avail space, bounds geom.Rect, x, y float32) bool {
	sz := req.Size
	vExtent := sz.Height + req.Offset
	hExtent := sz.Width + req.Offset

	withinH := x >= bounds.X && x+sz.Width <= bounds.Right()
	withinV := y >= bounds.Y && y+sz.Height <= bounds.Bottom()

	switch side {
	case SideTop:
		return avail.top >= vExtent && withinH
	case SideBottom:
		return avail.bottom >= vExtent && withinH
	case SideLeft:
		return avail.left >= hExtent && withinV
	case SideRight:
		return avail.right >= hExtent && withinV
	case SideTopLeft:
		return avail.top >= vExtent && avail.left >= sz.Width
	case SideTopRight:
		return avail.top >= vExtent && avail.right >= sz.Width
	case SideBottomLeft:
		return avail.bottom >= vExtent && avail.left >= sz.Width
	default: // SideBottomRight
		return avail.bottom >= vExtent && avail.right >= sz.Width
	}
}

// spaceScore sums the available space in the directions a placement name
// implies, the fallback ranking when no candidate fits.
func spaceScore(side Side, avail space) float32 {
	switch side {
	case SideTop:
		return avail.top
	case SideBottom:
		return avail.bottom
	case SideLeft:
		return avail.left
	case SideRight:
		return avail.right
	case SideTopLeft:
		return avail.top + avail.left
	case SideTopRight:
		return avail.top + avail.right
	case SideBottomLeft:
		return avail.bottom + avail.left
	default: // SideBottomRight
		return avail.bottom + avail.right
	}
}

// clampResult forces the final coordinates into the usable bounds. This is
// a hard post-condition of every solve, fitting or not. An element larger
// than the bounds anchors to the top-left usable corner.
func clampResult(res Result, sz Size, bounds geom.Rect) Result {
	res.X = geom.Clamp(res.X, bounds.X, bounds.Right()-sz.Width)
	res.Y = geom.Clamp(res.Y, bounds.Y, bounds.Bottom()-sz.Height)
	return res
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
