package placement

import (
	"sync"

	"github.com/statdeck/statdeck/internal/geom"
	"github.com/statdeck/statdeck/internal/surface"
)

// Handle is the non-owning reference the tracker keeps to a floating
// element. Handles are compared by identity, so implementations must be
// pointer types.
type Handle interface {
	// Attached reports whether the element is still in the render tree.
	Attached() bool
	// Move applies a solved position to the element.
	Move(x, y float32)
}

// TargetProvider is optionally implemented by handles whose trigger
// rectangle moves with the layout; the tracker re-reads it before each
// re-solve. ok=false means the trigger itself left the render tree.
type TargetProvider interface {
	TargetRect() (r geom.Rect, ok bool)
}

// Tracker holds the association between solver-managed floating elements
// and their originating requests so they can be repositioned when the
// surface changes. The association is non-owning: a detached element is
// skipped and forgotten, never a dangling reference.
type Tracker struct {
	mu      sync.Mutex
	tracked map[Handle]Request
}

// NewTracker builds an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{tracked: make(map[Handle]Request)}
}

// Track starts repositioning the element on surface changes, solving with
// its original request parameters against each new snapshot. Tracking an
// already-tracked handle replaces its request.
func (t *Tracker) Track(h Handle, req Request) {
	if h == nil {
		return
	}
	t.mu.Lock()
	t.tracked[h] = req
	t.mu.Unlock()
}

// Forget drops the association. Idempotent; unknown handles are a no-op.
func (t *Tracker) Forget(h Handle) {
	t.mu.Lock()
	delete(t.tracked, h)
	t.mu.Unlock()
}

// Len returns the number of tracked elements.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tracked)
}

// Reposition re-solves every live association against the new surface
// state and moves the elements. Detached elements are dropped. Typically
// wired directly to surface.Monitor.OnChange.
func (t *Tracker) Reposition(s surface.State) {
	t.mu.Lock()
	type job struct {
		h   Handle
		req Request
	}
	jobs := make([]job, 0, len(t.tracked))
	for h, req := range t.tracked {
		jobs = append(jobs, job{h, req})
	}
	t.mu.Unlock()

	for _, j := range jobs {
		if !j.h.Attached() {
			t.Forget(j.h)
			continue
		}
		req := j.req
		req.Surface = s
		if tp, ok := j.h.(TargetProvider); ok {
			target, live := tp.TargetRect()
			if !live {
				t.Forget(j.h)
				continue
			}
			req.Target = target
		}
		res := Solve(req)
		j.h.Move(res.X, res.Y)
	}
}
