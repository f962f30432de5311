package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynelayout "fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/statdeck/statdeck/internal/layout"
	"github.com/statdeck/statdeck/internal/surface"
)

// GridBoard is a responsive grid container driven by a named grid config.
// Each resize re-resolves the layout for the current device class and
// adjusts the column count in place; a zero-width layout pass keeps the
// previous arrangement.
type GridBoard struct {
	widget.BaseWidget

	registry   *layout.Registry
	monitor    *surface.Monitor
	configName string
	inner      *fyne.Container

	mu      sync.Mutex
	current layout.GridLayout
}

// NewGridBoard builds a grid of items resolved against the named config.
// The monitor supplies the device class; the board re-resolves both on its
// own resizes and on surface changes (the caller wires the latter through
// Refit, typically from Monitor.OnChange).
func NewGridBoard(registry *layout.Registry, monitor *surface.Monitor, configName string, items ...fyne.CanvasObject) *GridBoard {
	b := &GridBoard{
		registry:   registry,
		monitor:    monitor,
		configName: configName,
		inner:      container.New(fynelayout.NewGridLayoutWithColumns(1), items...),
	}
	b.ExtendBaseWidget(b)
	return b
}

// Resize re-resolves the grid for the new width before the normal layout
// pass so the children are arranged with the fresh column count.
func (b *GridBoard) Resize(size fyne.Size) {
	b.refit(size.Width)
	b.BaseWidget.Resize(size)
}

// Refit re-resolves against the current width; wire it to surface changes
// so a device-class flip rearranges the board even at an unchanged width.
func (b *GridBoard) Refit() {
	b.refit(b.Size().Width)
}

func (b *GridBoard) refit(width float32) {
	class := b.monitor.Current().DeviceClass
	resolved, err := b.registry.Resolve(b.configName, width, class)
	if err != nil {
		// Zero width: the board is not laid out yet, keep what we have.
		return
	}

	b.mu.Lock()
	changed := resolved != b.current
	b.current = resolved
	b.mu.Unlock()

	if changed {
		b.inner.Layout = fynelayout.NewGridLayoutWithColumns(resolved.Columns)
		b.inner.Refresh()
	}
}

// Layout returns the most recently resolved grid layout.
func (b *GridBoard) Layout() layout.GridLayout {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// CreateRenderer renders the inner grid container.
func (b *GridBoard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.inner)
}
