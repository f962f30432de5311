// Package surface tracks the geometry of the rendering surface StatDeck is
// drawn on: its size, pixel density, orientation, device class, platform
// class, and safe-area insets. The Monitor is the single stateful component
// of the layout engine; everything downstream (grid resolution, floating
// element placement) is a pure function of the snapshots it publishes.
package surface

import (
	"github.com/statdeck/statdeck/internal/geom"
)

// DeviceClass buckets the surface into the coarse width categories the grid
// breakpoints are keyed by.
type DeviceClass int

const (
	DeviceMobile  DeviceClass = iota // width <= 480
	DeviceTablet                     // width <= 768
	DeviceDesktop                    // anything wider
)

func (c DeviceClass) String() string {
	switch c {
	case DeviceMobile:
		return "mobile"
	case DeviceTablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// Width thresholds for device classification, in surface units.
const (
	mobileMaxWidth = 480
	tabletMaxWidth = 768
)

// ClassifyDevice derives the device class from the surface width. The
// mapping is deterministic: the class is a function of width alone.
func ClassifyDevice(width float32) DeviceClass {
	switch {
	case width <= mobileMaxWidth:
		return DeviceMobile
	case width <= tabletMaxWidth:
		return DeviceTablet
	default:
		return DeviceDesktop
	}
}

// Orientation is the coarse rotation of the surface.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// ClassifyOrientation derives orientation from the surface dimensions.
// A square surface counts as portrait.
func ClassifyOrientation(width, height float32) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

// PlatformClass is the coarse platform family the surface runs on. It only
// matters for the safe-area fallback heuristic, which is specific to
// iOS-style notched hardware.
type PlatformClass int

const (
	PlatformOther PlatformClass = iota
	PlatformIOSLike
	PlatformAndroidLike
)

func (p PlatformClass) String() string {
	switch p {
	case PlatformIOSLike:
		return "ios-like"
	case PlatformAndroidLike:
		return "android-like"
	default:
		return "other"
	}
}

// State is an immutable snapshot of the surface geometry. It is recomputed
// wholesale on every settled change and never partially mutated; consumers
// may hold a State indefinitely without observing torn values.
type State struct {
	Width        float32
	Height       float32
	PixelDensity float32
	Orientation  Orientation
	DeviceClass  DeviceClass
	Platform     PlatformClass
	SafeArea     geom.Insets
}

// Bounds returns the full surface rectangle at origin.
func (s State) Bounds() geom.Rect {
	return geom.NewRect(0, 0, s.Width, s.Height)
}

// SafeBounds returns the surface rectangle minus the safe-area insets; the
// region content may actually occupy.
func (s State) SafeBounds() geom.Rect {
	return s.Bounds().Inset(s.SafeArea)
}

// notchAspectThreshold is the max/min aspect ratio above which an iOS-like
// surface with no native inset reporting is assumed to carry a notch. The
// 2.1 cutoff sits between classic 16:9 phones (1.78) and notched ones
// (19.5:9 = 2.17).
const notchAspectThreshold = 2.1

// Fallback inset estimates for notched iOS-like hardware, in surface units.
// These are empirical approximations, not ground truth: real devices report
// their own values and never reach this path.
const (
	notchPortraitTop     = 44
	notchPortraitBottom  = 34
	notchLandscapeSide   = 44
	notchLandscapeBottom = 21
)

// EstimateSafeArea returns the heuristic safe-area insets for a surface
// whose host reports none. Only iOS-like surfaces with a notch-class aspect
// ratio get non-zero estimates; everything else is assumed edge-to-edge
// safe.
func EstimateSafeArea(platform PlatformClass, width, height float32) geom.Insets {
	if platform != PlatformIOSLike || width <= 0 || height <= 0 {
		return geom.Insets{}
	}
	long, short := width, height
	if height > width {
		long, short = height, width
	}
	if long/short <= notchAspectThreshold {
		return geom.Insets{}
	}
	if ClassifyOrientation(width, height) == Landscape {
		return geom.NewInsets(0, notchLandscapeSide, notchLandscapeBottom, notchLandscapeSide)
	}
	return geom.NewInsets(notchPortraitTop, 0, notchPortraitBottom, 0)
}
