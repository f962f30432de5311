package ui

import (
	"fyne.io/fyne/v2"

	"github.com/statdeck/statdeck/internal/layout"
)

// WatchedContainer adapts a Fyne container to the threshold registry's
// Container contract. Label toggles arrive through the callback; the
// application maps them to whatever presentation change the label stands
// for (compact rows, hidden columns, stacked panes).
type WatchedContainer struct {
	onLabel  func(label string, active bool)
	detached bool
}

// SetLabelActive forwards a single label toggle.
func (w *WatchedContainer) SetLabelActive(label string, active bool) {
	if w.onLabel != nil {
		w.onLabel(label, active)
	}
}

// Attached reports whether the container is still in the render tree.
func (w *WatchedContainer) Attached() bool { return !w.detached }

// Detach marks the container as removed; pending observations for it are
// dropped by the registry.
func (w *WatchedContainer) Detach() { w.detached = true }

// WatchThresholds wires a canvas object into the threshold registry: the
// returned SizeReporter replaces obj in the widget tree and feeds its width
// to the registry, which toggles labels through onLabel. The returned
// WatchedContainer unregisters via registry.Unregister or Detach.
func WatchThresholds(registry *layout.ThresholdRegistry, obj fyne.CanvasObject, thresholds []layout.Threshold, onLabel func(label string, active bool)) (*SizeReporter, *WatchedContainer) {
	wc := &WatchedContainer{onLabel: onLabel}
	registry.Register(wc, thresholds)
	reporter := NewSizeReporter(obj, func(size fyne.Size) {
		registry.Observe(wc, size.Width)
	})
	return reporter, wc
}
