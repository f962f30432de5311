// Package layout turns container geometry into concrete layout decisions:
// responsive grid resolution from declarative breakpoint rules, and
// width-threshold ("container query") label management for observed
// containers. Everything here is a pure function of (geometry, config); the
// surface.Monitor supplies the geometry and this package never observes
// anything itself.
package layout

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/statdeck/statdeck/internal/surface"
)

// ColumnsAuto marks a breakpoint rule whose column count is computed from
// the container width instead of being fixed.
const ColumnsAuto = 0

// BreakpointRule overrides grid behavior for one device class.
type BreakpointRule struct {
	// Columns is the fixed column count for this device class, or
	// ColumnsAuto to fall back to capacity-based calculation.
	Columns int `toml:"columns"`
	// MinColumnWidth floors the resolved column width when Columns is
	// fixed. Zero inherits no floor.
	MinColumnWidth float32 `toml:"min_column_width"`
	// Gap overrides the config-level gap. Zero inherits the config gap.
	Gap float32 `toml:"gap"`
}

// GridConfig is a named, immutable grid description registered at startup.
type GridConfig struct {
	// MinColumnWidth drives capacity-based column calculation.
	MinColumnWidth float32 `toml:"min_column_width"`
	// MaxColumns caps the calculated column count. Must be >= 1.
	MaxColumns int `toml:"max_columns"`
	// Gap is the default spacing between columns.
	Gap float32 `toml:"gap"`
	// Breakpoints holds per-device-class overrides.
	Breakpoints map[surface.DeviceClass]BreakpointRule `toml:"-"`
}

// Validate reports whether the config is usable. Invalid configs are
// rejected at registration time so resolution never has to.
func (c GridConfig) Validate() error {
	if c.MaxColumns < 1 {
		return fmt.Errorf("%w: max columns %d, need at least 1", ErrInvalidConfig, c.MaxColumns)
	}
	if c.MinColumnWidth <= 0 {
		return fmt.Errorf("%w: min column width %v, need > 0", ErrInvalidConfig, c.MinColumnWidth)
	}
	for class, bp := range c.Breakpoints {
		if bp.Columns < 0 {
			return fmt.Errorf("%w: %s breakpoint columns %d", ErrInvalidConfig, class, bp.Columns)
		}
		if bp.Columns > 0 && bp.Columns > c.MaxColumns {
			return fmt.Errorf("%w: %s breakpoint columns %d exceeds max %d",
				ErrInvalidConfig, class, bp.Columns, c.MaxColumns)
		}
	}
	return nil
}

// Method records how a layout was derived.
type Method string

const (
	// MethodBreakpoint means a device-class rule fixed the column count.
	MethodBreakpoint Method = "breakpoint"
	// MethodCalculated means the count came from width / min column width.
	MethodCalculated Method = "calculated"
)

// GridLayout is a resolved, concrete layout: Columns >= 1 and
// ColumnWidth > 0 always hold for any layout returned by Resolve.
type GridLayout struct {
	Columns     int
	ColumnWidth float32
	Gap         float32
	Method      Method
}

// Configuration and geometry errors.
var (
	// ErrInvalidConfig marks a GridConfig rejected at registration.
	ErrInvalidConfig = errors.New("invalid grid config")
	// ErrZeroWidth marks a resolve call against an unmounted (zero width)
	// container. Callers skip the layout pass and keep the previous one.
	ErrZeroWidth = errors.New("container width is zero")
)

// Resolve computes the concrete grid layout for a container of the given
// width under the given device class.
//
// A device-class breakpoint with a fixed column count wins outright; its
// min column width floors the resulting column width. Otherwise the count
// is calculated from the config-level min column width and clamped to
// [1, MaxColumns]. The breakpoint's gap, when set, overrides the config
// gap in both paths.
func Resolve(containerWidth float32, cfg GridConfig, class surface.DeviceClass) (GridLayout, error) {
	if containerWidth <= 0 {
		return GridLayout{}, ErrZeroWidth
	}

	bp, hasBP := cfg.Breakpoints[class]

	gap := cfg.Gap
	if hasBP && bp.Gap > 0 {
		gap = bp.Gap
	}

	if hasBP && bp.Columns != ColumnsAuto {
		width := containerWidth / float32(bp.Columns)
		if bp.MinColumnWidth > width {
			width = bp.MinColumnWidth
		}
		return GridLayout{
			Columns:     bp.Columns,
			ColumnWidth: width,
			Gap:         gap,
			Method:      MethodBreakpoint,
		}, nil
	}

	possible := int(math.Floor(float64(containerWidth / cfg.MinColumnWidth)))
	columns := possible
	if columns < 1 {
		columns = 1
	}
	if columns > cfg.MaxColumns {
		columns = cfg.MaxColumns
	}
	return GridLayout{
		Columns:     columns,
		ColumnWidth: containerWidth / float32(columns),
		Gap:         gap,
		Method:      MethodCalculated,
	}, nil
}

// FallbackConfigName is the config every unknown name resolves against.
// It always exists in a Registry.
const FallbackConfigName = "card-grid"

// Registry is the named grid config lookup table. Configs are registered
// during application startup and immutable afterwards; registering the same
// name twice is a configuration error.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]GridConfig
}

// NewRegistry builds a registry pre-seeded with the built-in presets,
// including the card-grid fallback.
func NewRegistry() *Registry {
	r := &Registry{configs: make(map[string]GridConfig)}
	for name, cfg := range DefaultPresets() {
		r.configs[name] = cfg
	}
	return r
}

// Register adds a named config. The config is validated here so Resolve
// never sees an invalid one.
func (r *Registry) Register(name string, cfg GridConfig) error {
	if name == "" {
		return fmt.Errorf("%w: empty config name", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %q: %w", name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.configs[name]; exists {
		return fmt.Errorf("%w: config %q already registered", ErrInvalidConfig, name)
	}
	r.configs[name] = cfg
	return nil
}

// Config returns the named config, or the card-grid fallback when the name
// is unknown. The second return reports whether the name was known.
func (r *Registry) Config(name string) (GridConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cfg, ok := r.configs[name]; ok {
		return cfg, true
	}
	return r.configs[FallbackConfigName], false
}

// Names returns the registered config names, for diagnostics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	return names
}

// Resolve looks up a named config and resolves it. Unknown names fall back
// to the card-grid preset; a zero width returns ErrZeroWidth as in Resolve.
func (r *Registry) Resolve(name string, containerWidth float32, class surface.DeviceClass) (GridLayout, error) {
	cfg, _ := r.Config(name)
	return Resolve(containerWidth, cfg, class)
}
