package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/statdeck/statdeck/internal/geom"
	"github.com/statdeck/statdeck/internal/placement"
	"github.com/statdeck/statdeck/internal/surface"
)

// TooltipPreference is the placement order for hover tooltips.
var TooltipPreference = []placement.Side{
	placement.SideBottom, placement.SideTop, placement.SideLeft, placement.SideRight,
}

// MenuPreference is the placement order for dropdown menus.
var MenuPreference = []placement.Side{
	placement.SideBottomRight, placement.SideBottomLeft,
	placement.SideTopRight, placement.SideTopLeft,
}

// DefaultEdgeBuffer keeps floating elements off the very edge of the
// usable surface.
const DefaultEdgeBuffer float32 = 8

// Overlay is a floating element (tooltip, dropdown, modal body) positioned
// by the placement solver. It implements placement.Handle so a Tracker can
// reposition it when the surface changes.
type Overlay struct {
	popup   *widget.PopUp
	monitor *surface.Monitor
	tracker *placement.Tracker
	size    placement.Size
	target  func() (geom.Rect, bool)
	shown   bool
}

// NewOverlay prepares content as a floating element on the window canvas.
// target reports the live trigger rectangle; it may return ok=false once
// the trigger leaves the render tree, after which the overlay is skipped
// by repositioning.
func NewOverlay(canvas fyne.Canvas, content fyne.CanvasObject, monitor *surface.Monitor, tracker *placement.Tracker, target func() (geom.Rect, bool)) *Overlay {
	popup := widget.NewPopUp(content, canvas)
	min := content.MinSize()
	return &Overlay{
		popup:   popup,
		monitor: monitor,
		tracker: tracker,
		size:    placement.Size{Width: min.Width, Height: min.Height},
		target:  target,
	}
}

// ShowAt solves against the current surface snapshot with the given
// preference order and shows the overlay there, registering it for
// reposition-on-change.
func (o *Overlay) ShowAt(preference []placement.Side, offset float32) placement.Result {
	req := o.request(preference, offset)
	res := placement.Solve(req)

	o.popup.ShowAtPosition(fyne.NewPos(res.X, res.Y))
	o.shown = true
	o.tracker.Track(o, req)
	return res
}

// ShowCentered shows the overlay as a centered modal.
func (o *Overlay) ShowCentered() placement.Result {
	res := placement.SolveCentered(o.size, o.monitor.Current(), DefaultEdgeBuffer)
	o.popup.ShowAtPosition(fyne.NewPos(res.X, res.Y))
	o.shown = true
	return res
}

// Hide dismisses the overlay and forgets its tracking association.
func (o *Overlay) Hide() {
	o.shown = false
	o.tracker.Forget(o)
	o.popup.Hide()
}

// Attached reports whether the overlay is currently shown.
func (o *Overlay) Attached() bool { return o.shown }

// Move repositions the popup; called by the tracker after a re-solve.
func (o *Overlay) Move(x, y float32) {
	o.popup.Move(fyne.NewPos(x, y))
}

// TargetRect exposes the live trigger rectangle to the tracker.
func (o *Overlay) TargetRect() (geom.Rect, bool) {
	return o.target()
}

func (o *Overlay) request(preference []placement.Side, offset float32) placement.Request {
	target, _ := o.target()
	return placement.Request{
		Target:     target,
		Size:       o.size,
		Surface:    o.monitor.Current(),
		Preference: preference,
		EdgeBuffer: DefaultEdgeBuffer,
		Offset:     offset,
	}
}

// RectOf returns the surface-coordinate rectangle of a canvas object,
// the trigger geometry placement requests are built from.
func RectOf(obj fyne.CanvasObject) geom.Rect {
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(obj)
	size := obj.Size()
	return geom.NewRect(pos.X, pos.Y, size.Width, size.Height)
}
