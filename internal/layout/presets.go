package layout

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/statdeck/statdeck/internal/surface"
)

// DefaultPresets returns the built-in grid configs for the dashboard
// surfaces. card-grid doubles as the fallback for unknown config names.
func DefaultPresets() map[string]GridConfig {
	return map[string]GridConfig{
		"card-grid": {
			MinColumnWidth: 280,
			MaxColumns:     4,
			Gap:            16,
			Breakpoints: map[surface.DeviceClass]BreakpointRule{
				surface.DeviceMobile: {Columns: 1},
				surface.DeviceTablet: {Columns: 2, Gap: 12},
			},
		},
		"stat-tiles": {
			MinColumnWidth: 160,
			MaxColumns:     6,
			Gap:            12,
			Breakpoints: map[surface.DeviceClass]BreakpointRule{
				surface.DeviceMobile: {Columns: 2, MinColumnWidth: 140, Gap: 8},
			},
		},
		"match-history": {
			MinColumnWidth: 320,
			MaxColumns:     3,
			Gap:            12,
			Breakpoints: map[surface.DeviceClass]BreakpointRule{
				surface.DeviceMobile: {Columns: 1},
			},
		},
	}
}

// presetFile is the on-disk TOML schema for grid presets:
//
//	[grids.card-grid]
//	min_column_width = 280
//	max_columns = 4
//	gap = 16
//
//	[grids.card-grid.breakpoints.mobile]
//	columns = 1
//
// A breakpoint with no columns key (or columns = 0) is an auto rule.
type presetFile struct {
	Grids map[string]presetConfig `toml:"grids"`
}

type presetConfig struct {
	MinColumnWidth float32                   `toml:"min_column_width"`
	MaxColumns     int                       `toml:"max_columns"`
	Gap            float32                   `toml:"gap"`
	Breakpoints    map[string]BreakpointRule `toml:"breakpoints"`
}

// deviceClassNames maps the TOML breakpoint keys to device classes.
var deviceClassNames = map[string]surface.DeviceClass{
	"mobile":  surface.DeviceMobile,
	"tablet":  surface.DeviceTablet,
	"desktop": surface.DeviceDesktop,
}

// LoadPresets reads grid configs from a TOML preset file. Every config is
// validated; a single invalid entry rejects the whole file so a partial
// preset table never reaches the registry.
func LoadPresets(path string) (map[string]GridConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePresets(data)
}

// ParsePresets decodes and validates a TOML preset table.
func ParsePresets(data []byte) (map[string]GridConfig, error) {
	var file presetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	configs := make(map[string]GridConfig, len(file.Grids))
	for name, pc := range file.Grids {
		cfg := GridConfig{
			MinColumnWidth: pc.MinColumnWidth,
			MaxColumns:     pc.MaxColumns,
			Gap:            pc.Gap,
		}
		if len(pc.Breakpoints) > 0 {
			cfg.Breakpoints = make(map[surface.DeviceClass]BreakpointRule, len(pc.Breakpoints))
			for key, rule := range pc.Breakpoints {
				class, ok := deviceClassNames[key]
				if !ok {
					return nil, fmt.Errorf("%w: config %q: unknown device class %q",
						ErrInvalidConfig, name, key)
				}
				cfg.Breakpoints[class] = rule
			}
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("config %q: %w", name, err)
		}
		configs[name] = cfg
	}
	return configs, nil
}

// RegisterPresets registers every config from a preset map, failing on the
// first conflict or invalid entry.
func RegisterPresets(r *Registry, presets map[string]GridConfig) error {
	for name, cfg := range presets {
		if err := r.Register(name, cfg); err != nil {
			return err
		}
	}
	return nil
}
