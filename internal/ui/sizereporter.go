// Package ui provides the Fyne glue that applies the layout engine's
// outputs: size observation, responsive grid containers, and floating
// element overlays. Nothing in this package makes layout decisions itself;
// it routes geometry into the engine and positions into widgets.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SizeReporter wraps a canvas object and reports every size change the
// Fyne layout pass gives it. Fyne has no resize callback on windows or
// containers, so this widget is the engine's view into host geometry: one
// wraps the window content to feed the surface host, others wrap observed
// containers to feed the threshold registry.
type SizeReporter struct {
	widget.BaseWidget
	content fyne.CanvasObject
	onSize  func(fyne.Size)

	last fyne.Size
}

// NewSizeReporter wraps content; onSize fires on every distinct size the
// widget is laid out to, including the first.
func NewSizeReporter(content fyne.CanvasObject, onSize func(fyne.Size)) *SizeReporter {
	r := &SizeReporter{content: content, onSize: onSize}
	r.ExtendBaseWidget(r)
	return r
}

// Resize forwards the new size after the normal widget resize, deduplicating
// repeated layouts at an unchanged size.
func (r *SizeReporter) Resize(size fyne.Size) {
	r.BaseWidget.Resize(size)
	if size == r.last {
		return
	}
	r.last = size
	if r.onSize != nil {
		r.onSize(size)
	}
}

// CreateRenderer renders the wrapped content directly.
func (r *SizeReporter) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}
