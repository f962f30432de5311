package surface

import (
	"runtime"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/statdeck/statdeck/internal/geom"
)

// FyneHost adapts a fyne.Window to the Host interface.
//
// Fyne has no window-resize callback, so the adapter does not observe the
// window itself; the application feeds it through Report (typically from a
// ui.SizeReporter wrapping the window content). Fyne also does not expose
// native safe-area insets, so SafeArea always defers to the monitor's
// heuristic estimate.
type FyneHost struct {
	win    fyne.Window
	device fyne.Device

	mu    sync.Mutex
	sinks map[int]func(Signal)
	next  int
}

// NewFyneHost wraps a window as a surface host.
func NewFyneHost(win fyne.Window) *FyneHost {
	return &FyneHost{
		win:    win,
		device: fyne.CurrentDevice(),
		sinks:  make(map[int]func(Signal)),
	}
}

// Size returns the window canvas dimensions.
func (h *FyneHost) Size() (float32, float32) {
	size := h.win.Canvas().Size()
	return size.Width, size.Height
}

// PixelDensity returns the canvas scale factor.
func (h *FyneHost) PixelDensity() float32 {
	return h.win.Canvas().Scale()
}

// Orientation reports the device orientation on mobile. Desktop Fyne always
// answers vertical regardless of window shape, so the value is only trusted
// on mobile devices; elsewhere the monitor derives orientation from size.
func (h *FyneHost) Orientation() (Orientation, bool) {
	if !h.device.IsMobile() {
		return Portrait, false
	}
	switch h.device.Orientation() {
	case fyne.OrientationHorizontalLeft, fyne.OrientationHorizontalRight:
		return Landscape, true
	default:
		return Portrait, true
	}
}

// SafeArea reports no native insets; Fyne does not surface them.
func (h *FyneHost) SafeArea() (geom.Insets, bool) {
	return geom.Insets{}, false
}

// Platform classifies the runtime OS into the coarse platform families the
// safe-area heuristic distinguishes.
func (h *FyneHost) Platform() PlatformClass {
	switch runtime.GOOS {
	case "ios":
		return PlatformIOSLike
	case "android":
		return PlatformAndroidLike
	default:
		return PlatformOther
	}
}

// Notify registers a signal sink and returns its cancel function.
func (h *FyneHost) Notify(fn func(Signal)) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	h.sinks[id] = fn
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		delete(h.sinks, id)
		h.mu.Unlock()
	}
}

// Report forwards a change signal to every registered sink. The application
// calls this from its resize reporting path.
func (h *FyneHost) Report(s Signal) {
	h.mu.Lock()
	fns := make([]func(Signal), 0, len(h.sinks))
	for _, fn := range h.sinks {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}
