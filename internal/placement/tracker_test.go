package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statdeck/statdeck/internal/geom"
)

// fakeElement records the positions it is moved to.
type fakeElement struct {
	attached bool
	target   geom.Rect
	moves    []geom.Rect
	size     Size
}

func newFakeElement(sz Size) *fakeElement {
	return &fakeElement{attached: true, size: sz}
}

func (e *fakeElement) Attached() bool { return e.attached }

func (e *fakeElement) Move(x, y float32) {
	e.moves = append(e.moves, geom.NewRect(x, y, e.size.Width, e.size.Height))
}

func TestTracker_RepositionsOnSurfaceChange(t *testing.T) {
	tr := NewTracker()
	el := newFakeElement(Size{Width: 80, Height: 60})
	tr.Track(el, Request{
		Target:     geom.NewRect(700, 50, 40, 20),
		Size:       el.size,
		Surface:    desktopSurface(800, 600),
		EdgeBuffer: 8,
	})

	// The surface shrinks: the element must come back inside it.
	tr.Reposition(desktopSurface(600, 400))

	require.Len(t, el.moves, 1)
	moved := el.moves[0]
	usable := desktopSurface(600, 400).Bounds().Inset(geom.UniformInsets(8))
	assert.True(t, usable.Contains(moved), "repositioned element stays on the new surface, got %+v", moved)
}

func TestTracker_DetachedElementIsSkippedAndDropped(t *testing.T) {
	tr := NewTracker()
	el := newFakeElement(Size{Width: 80, Height: 60})
	tr.Track(el, Request{
		Target:  geom.NewRect(100, 100, 40, 20),
		Size:    el.size,
		Surface: desktopSurface(800, 600),
	})

	el.attached = false
	tr.Reposition(desktopSurface(600, 400))

	assert.Empty(t, el.moves, "detached elements are never moved")
	assert.Equal(t, 0, tr.Len(), "detached elements leave the tracker")
}

func TestTracker_ForgetIsIdempotent(t *testing.T) {
	tr := NewTracker()
	el := newFakeElement(Size{Width: 80, Height: 60})
	tr.Track(el, Request{Size: el.size, Surface: desktopSurface(800, 600)})

	tr.Forget(el)
	tr.Forget(el)
	assert.Equal(t, 0, tr.Len())

	tr.Reposition(desktopSurface(600, 400))
	assert.Empty(t, el.moves)
}

// movingElement also reports a live target rect.
type movingElement struct {
	fakeElement
	targetLive bool
}

func (e *movingElement) TargetRect() (geom.Rect, bool) {
	return e.target, e.targetLive
}

func TestTracker_LiveTargetIsReRead(t *testing.T) {
	tr := NewTracker()
	el := &movingElement{
		fakeElement: *newFakeElement(Size{Width: 80, Height: 60}),
		targetLive:  true,
	}
	el.target = geom.NewRect(100, 100, 40, 20)
	tr.Track(el, Request{
		Target:     geom.NewRect(700, 50, 40, 20), // stale
		Size:       el.size,
		Surface:    desktopSurface(800, 600),
		Preference: []Side{SideBottom},
	})

	tr.Reposition(desktopSurface(800, 600))

	require.Len(t, el.moves, 1)
	assert.Equal(t, float32(120), el.moves[0].Y, "solved against the live target, not the stale one")
}

func TestTracker_DeadTargetDropsAssociation(t *testing.T) {
	tr := NewTracker()
	el := &movingElement{
		fakeElement: *newFakeElement(Size{Width: 80, Height: 60}),
		targetLive:  false,
	}
	tr.Track(el, Request{Size: el.size, Surface: desktopSurface(800, 600)})

	tr.Reposition(desktopSurface(800, 600))

	assert.Empty(t, el.moves)
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_TrackReplacesRequest(t *testing.T) {
	tr := NewTracker()
	el := newFakeElement(Size{Width: 80, Height: 60})

	tr.Track(el, Request{Size: el.size, Surface: desktopSurface(800, 600)})
	tr.Track(el, Request{Size: el.size, Surface: desktopSurface(800, 600)})

	assert.Equal(t, 1, tr.Len(), "re-tracking the same handle keeps one association")
}
