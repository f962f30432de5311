package surface

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statdeck/statdeck/internal/geom"
)

// fakeHost is a scriptable Host for driving the monitor in tests.
type fakeHost struct {
	mu          sync.Mutex
	width       float32
	height      float32
	density     float32
	orientation *Orientation
	safeArea    *geom.Insets
	platform    PlatformClass
	sink        func(Signal)
}

func newFakeHost(w, h float32) *fakeHost {
	return &fakeHost{width: w, height: h, density: 2}
}

func (f *fakeHost) Size() (float32, float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

func (f *fakeHost) PixelDensity() float32 { return f.density }

func (f *fakeHost) Orientation() (Orientation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.orientation == nil {
		return Portrait, false
	}
	return *f.orientation, true
}

func (f *fakeHost) SafeArea() (geom.Insets, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.safeArea == nil {
		return geom.Insets{}, false
	}
	return *f.safeArea, true
}

func (f *fakeHost) Platform() PlatformClass {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.platform
}

func (f *fakeHost) Notify(fn func(Signal)) func() {
	f.mu.Lock()
	f.sink = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.sink = nil
		f.mu.Unlock()
	}
}

// resize updates the host size and fires a resize signal.
func (f *fakeHost) resize(w, h float32) {
	f.mu.Lock()
	f.width, f.height = w, h
	fn := f.sink
	f.mu.Unlock()
	if fn != nil {
		fn(SignalResize)
	}
}

func TestMonitor_InitialSnapshot(t *testing.T) {
	m := NewMonitor(newFakeHost(1024, 768))
	defer m.Close()

	s := m.Current()
	assert.Equal(t, float32(1024), s.Width)
	assert.Equal(t, float32(768), s.Height)
	assert.Equal(t, DeviceDesktop, s.DeviceClass)
	assert.Equal(t, Landscape, s.Orientation)
	assert.Equal(t, float32(2), s.PixelDensity)
}

func TestMonitor_ResizeRederivesClassification(t *testing.T) {
	host := newFakeHost(1024, 768)
	m := NewMonitor(host, WithDebounce(0))
	defer m.Close()

	host.resize(400, 800)

	s := m.Current()
	assert.Equal(t, DeviceMobile, s.DeviceClass)
	assert.Equal(t, Portrait, s.Orientation)
}

func TestMonitor_DebounceCoalescesBurst(t *testing.T) {
	host := newFakeHost(1024, 768)
	m := NewMonitor(host, WithDebounce(30*time.Millisecond))
	defer m.Close()

	var mu sync.Mutex
	var calls []struct{ cur, prev State }
	m.OnChange(func(cur, prev State) {
		mu.Lock()
		calls = append(calls, struct{ cur, prev State }{cur, prev})
		mu.Unlock()
	})

	before := m.Current()
	host.resize(900, 700)
	host.resize(700, 700)
	host.resize(400, 800)

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1, "a burst settles into exactly one notification")
	assert.Equal(t, before, calls[0].prev, "previous is the pre-burst snapshot")
	assert.Equal(t, float32(400), calls[0].cur.Width, "current is the post-burst snapshot")
}

func TestMonitor_ZeroSizeKeepsLastValidSnapshot(t *testing.T) {
	host := newFakeHost(1024, 768)
	m := NewMonitor(host, WithDebounce(0))
	defer m.Close()

	notified := 0
	m.OnChange(func(cur, prev State) { notified++ })

	host.resize(0, 0)

	s := m.Current()
	assert.Equal(t, float32(1024), s.Width, "degenerate size is ignored")
	assert.Equal(t, 0, notified, "no notification when nothing changed")
}

func TestMonitor_ReportedOrientationWins(t *testing.T) {
	host := newFakeHost(800, 400)
	portrait := Portrait
	host.orientation = &portrait

	m := NewMonitor(host)
	defer m.Close()

	// Size alone says landscape; the host-reported orientation overrides.
	assert.Equal(t, Portrait, m.Current().Orientation)
}

func TestMonitor_NativeSafeAreaPreferred(t *testing.T) {
	host := newFakeHost(390, 844)
	host.platform = PlatformIOSLike
	native := geom.NewInsets(47, 0, 34, 0)
	host.safeArea = &native

	m := NewMonitor(host)
	defer m.Close()

	assert.Equal(t, native, m.Current().SafeArea, "native insets beat the heuristic")
}

func TestMonitor_HeuristicSafeAreaFallback(t *testing.T) {
	host := newFakeHost(390, 844)
	host.platform = PlatformIOSLike

	m := NewMonitor(host)
	defer m.Close()

	assert.Equal(t, geom.NewInsets(44, 0, 34, 0), m.Current().SafeArea)
}

func TestMonitor_UnsubscribeMidBurst(t *testing.T) {
	host := newFakeHost(1024, 768)
	m := NewMonitor(host, WithDebounce(30*time.Millisecond))
	defer m.Close()

	var mu sync.Mutex
	called := false
	unsubscribe := m.OnChange(func(cur, prev State) {
		mu.Lock()
		called = true
		mu.Unlock()
	})

	host.resize(500, 500)
	unsubscribe()

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, called, "unsubscribing mid-burst takes effect before the flush")
}

func TestMonitor_UnsubscribeTwiceIsHarmless(t *testing.T) {
	m := NewMonitor(newFakeHost(1024, 768))
	defer m.Close()

	unsubscribe := m.OnChange(func(cur, prev State) {})
	unsubscribe()
	unsubscribe()
}

func TestMonitor_ListenerMayTriggerChanges(t *testing.T) {
	host := newFakeHost(1024, 768)
	m := NewMonitor(host, WithDebounce(0))
	defer m.Close()

	widths := []float32{}
	depth, maxDepth := 0, 0
	m.OnChange(func(cur, prev State) {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		widths = append(widths, cur.Width)
		if cur.Width == 500 {
			// A listener reacting to the change by resizing again gets the
			// follow-up change as its own cycle, after this call returns.
			host.resize(600, 600)
		}
		depth--
	})

	host.resize(500, 500)

	assert.Equal(t, []float32{500, 600}, widths)
	assert.Equal(t, 1, maxDepth, "notifications are delivered sequentially, never nested")
}

func TestMonitor_CloseStopsNotifications(t *testing.T) {
	host := newFakeHost(1024, 768)
	m := NewMonitor(host, WithDebounce(0))

	called := false
	m.OnChange(func(cur, prev State) { called = true })

	m.Close()
	host.resize(500, 500)

	assert.False(t, called)
	m.Close() // idempotent
}
