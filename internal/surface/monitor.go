package surface

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/statdeck/statdeck/internal/geom"
)

// Signal identifies which aspect of the host surface changed. The monitor
// recomputes the whole State regardless of kind; the kind exists for debug
// logging and for hosts that report orientation separately from size.
type Signal int

const (
	SignalResize Signal = iota
	SignalOrientation
	SignalSafeArea
)

func (s Signal) String() string {
	switch s {
	case SignalOrientation:
		return "orientation"
	case SignalSafeArea:
		return "safe-area"
	default:
		return "resize"
	}
}

// Host abstracts the rendering surface the monitor observes. Implementations
// answer geometry queries synchronously and deliver change signals through
// the callback registered with Notify.
type Host interface {
	// Size returns the current surface dimensions. A zero size means the
	// host cannot report yet (e.g. window not mapped).
	Size() (width, height float32)
	// PixelDensity returns the device pixel ratio (1.0 when unknown).
	PixelDensity() float32
	// Orientation returns the host-reported orientation, when the platform
	// exposes one. ok=false means orientation must be derived from size.
	Orientation() (o Orientation, ok bool)
	// SafeArea returns the native safe-area insets, when the platform
	// exposes them. ok=false triggers the heuristic estimate.
	SafeArea() (in geom.Insets, ok bool)
	// Platform returns the platform family of the surface.
	Platform() PlatformClass
	// Notify registers a change callback and returns a cancel function.
	Notify(fn func(Signal)) (cancel func())
}

// DefaultDebounce is the settle window for change signals. Resize and
// orientation events arrive in bursts (window drags, on-screen keyboard
// animations); every signal inside the window collapses into a single
// recompute and notification.
const DefaultDebounce = 150 * time.Millisecond

// Listener receives the settled snapshot and the snapshot that preceded the
// burst that produced it.
type Listener func(current, previous State)

// Monitor owns the surface State and fans out change notifications. It is
// the only component of the engine with mutable state; grid resolution and
// placement solving consume its snapshots as plain values.
type Monitor struct {
	host     Host
	debounce time.Duration
	logger   *log.Logger

	mu         sync.Mutex
	state      State
	listeners  map[string]Listener
	timer      *time.Timer
	burstPrev  State
	burstOpen  bool
	notifying  bool
	cancelHost func()
	closed     bool
}

// Option configures a Monitor at construction time.
type Option func(*Monitor)

// WithDebounce overrides the settle window. Tests use a near-zero window;
// a zero or negative value flushes synchronously on every signal.
func WithDebounce(d time.Duration) Option {
	return func(m *Monitor) { m.debounce = d }
}

// WithLogger attaches a logger for debug-level geometry transitions.
func WithLogger(l *log.Logger) Option {
	return func(m *Monitor) { m.logger = l }
}

// NewMonitor builds a monitor over the given host, derives the initial
// snapshot (including the startup safe-area pass) and subscribes to host
// change signals.
func NewMonitor(host Host, opts ...Option) *Monitor {
	m := &Monitor{
		host:      host,
		debounce:  DefaultDebounce,
		logger:    log.New(io.Discard),
		listeners: make(map[string]Listener),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = m.derive(State{})
	m.cancelHost = host.Notify(m.signal)
	return m
}

// Current returns the latest settled snapshot. Never blocks beyond the
// internal mutex.
func (m *Monitor) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// OnChange registers a listener invoked after every settled change with the
// new and previous snapshots. The returned function unsubscribes; calling it
// mid-burst takes effect before the next flush, and calling it more than
// once is harmless.
func (m *Monitor) OnChange(fn Listener) (unsubscribe func()) {
	id := uuid.New().String()
	m.mu.Lock()
	m.listeners[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Close stops observing the host and drops all listeners. A pending debounce
// flush is cancelled; no notifications are delivered after Close returns.
func (m *Monitor) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.listeners = make(map[string]Listener)
	cancel := m.cancelHost
	m.cancelHost = nil
	m.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// signal handles a host change notification. The first signal of a burst
// records the pre-burst snapshot and arms the debounce timer; subsequent
// signals inside the window only reset the timer.
func (m *Monitor) signal(s Signal) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.logger.Debug("surface signal", "kind", s.String())
	if !m.burstOpen {
		m.burstOpen = true
		m.burstPrev = m.state
	}
	if m.debounce <= 0 {
		// A signal raised by a listener during notification stays in the
		// open burst; the notifying flush picks it up once the current
		// listener pass completes, so listeners never nest.
		if m.notifying {
			m.mu.Unlock()
			return
		}
		m.mu.Unlock()
		m.flush()
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.debounce, m.flush)
	m.mu.Unlock()
}

// flush recomputes the snapshot and notifies listeners once per settled
// burst. Listeners run outside the lock so they may freely call Current,
// OnChange or trigger further geometry changes; a change raised during
// notification opens a new burst and is delivered as its own cycle after
// the current listener pass returns, never nested inside it.
func (m *Monitor) flush() {
	for {
		m.mu.Lock()
		if m.closed || !m.burstOpen {
			m.mu.Unlock()
			return
		}
		prev := m.burstPrev
		m.burstOpen = false
		m.timer = nil

		next := m.derive(m.state)
		if next == m.state {
			m.mu.Unlock()
			return
		}
		m.state = next
		m.logger.Debug("surface settled",
			"width", next.Width, "height", next.Height,
			"device", next.DeviceClass.String(),
			"orientation", next.Orientation.String())

		fns := make([]Listener, 0, len(m.listeners))
		for _, fn := range m.listeners {
			fns = append(fns, fn)
		}
		m.notifying = true
		m.mu.Unlock()

		for _, fn := range fns {
			fn(next, prev)
		}

		m.mu.Lock()
		m.notifying = false
		again := m.debounce <= 0 && m.burstOpen && !m.closed
		m.mu.Unlock()
		if !again {
			return
		}
	}
}

// derive queries the host and builds a fully-formed State. A host that
// cannot report dimensions yields the last valid snapshot instead of a
// degenerate zero-size state.
func (m *Monitor) derive(last State) State {
	w, h := m.host.Size()
	if w <= 0 || h <= 0 {
		return last
	}

	s := State{
		Width:        w,
		Height:       h,
		PixelDensity: m.host.PixelDensity(),
		Platform:     m.host.Platform(),
		DeviceClass:  ClassifyDevice(w),
	}
	if s.PixelDensity <= 0 {
		s.PixelDensity = 1
	}
	if o, ok := m.host.Orientation(); ok {
		s.Orientation = o
	} else {
		s.Orientation = ClassifyOrientation(w, h)
	}
	if in, ok := m.host.SafeArea(); ok {
		s.SafeArea = in
	} else {
		s.SafeArea = EstimateSafeArea(s.Platform, w, h)
	}
	return s
}
