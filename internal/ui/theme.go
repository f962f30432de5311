// Package ui provides the Fyne glue for the StatDeck layout engine.
//
// This file defines the density-adaptive dashboard theme.

package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/statdeck/statdeck/internal/surface"
)

// densityProfile is the sizing set the theme applies for one device class.
// Desktop surfaces get the densest profile so more tiles fit per row; mobile
// trades density for touch-sized padding.
type densityProfile struct {
	text       float32
	caption    float32
	heading    float32
	subHeading float32
	padding    float32
	innerPad   float32
	inlineIcon float32
}

var densityProfiles = map[surface.DeviceClass]densityProfile{
	surface.DeviceDesktop: {
		text: 12, caption: 9, heading: 20, subHeading: 15,
		padding: 3, innerPad: 6, inlineIcon: 16,
	},
	surface.DeviceTablet: {
		text: 13, caption: 10, heading: 22, subHeading: 16,
		padding: 4, innerPad: 7, inlineIcon: 18,
	},
	surface.DeviceMobile: {
		text: 14, caption: 11, heading: 24, subHeading: 17,
		padding: 6, innerPad: 8, inlineIcon: 20,
	},
}

// StatDeckTheme wraps the default Fyne theme and swaps its sizing profile to
// follow the surface device class, so tile density tracks the same
// classification the grid resolver uses.
type StatDeckTheme struct {
	base fyne.Theme

	mu      sync.RWMutex
	profile densityProfile
	variant fyne.ThemeVariant
}

// NewStatDeckTheme creates a theme starting from the desktop density profile
// and the system default variant.
func NewStatDeckTheme() *StatDeckTheme {
	return &StatDeckTheme{
		base:    theme.DefaultTheme(),
		profile: densityProfiles[surface.DeviceDesktop],
	}
}

// SetDensityFor switches the sizing profile to the one for the given device
// class and reports whether the profile changed. Callers re-apply the theme
// through the app settings when it did.
func (t *StatDeckTheme) SetDensityFor(class surface.DeviceClass) bool {
	next, ok := densityProfiles[class]
	if !ok {
		next = densityProfiles[surface.DeviceDesktop]
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if next == t.profile {
		return false
	}
	t.profile = next
	return true
}

// SetVariant updates the theme variant (light/dark/system).
func (t *StatDeckTheme) SetVariant(variant fyne.ThemeVariant) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.variant = variant
}

// Color delegates to the base theme with the stored variant.
func (t *StatDeckTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	t.mu.RLock()
	v := t.variant
	t.mu.RUnlock()
	return t.base.Color(name, v)
}

// Font delegates to the base theme.
func (t *StatDeckTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *StatDeckTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size answers from the active density profile; everything the profile does
// not cover falls through to the base theme.
func (t *StatDeckTheme) Size(name fyne.ThemeSizeName) float32 {
	t.mu.RLock()
	p := t.profile
	t.mu.RUnlock()
	switch name {
	case theme.SizeNameText:
		return p.text
	case theme.SizeNameCaptionText:
		return p.caption
	case theme.SizeNameHeadingText:
		return p.heading
	case theme.SizeNameSubHeadingText:
		return p.subHeading
	case theme.SizeNamePadding:
		return p.padding
	case theme.SizeNameInnerPadding:
		return p.innerPad
	case theme.SizeNameInlineIcon:
		return p.inlineIcon
	default:
		return t.base.Size(name)
	}
}
