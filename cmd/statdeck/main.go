// StatDeck — adaptive game-statistics dashboard
//
// A cross-platform (desktop and mobile) dashboard shell built around the
// adaptive layout engine: surface monitoring, responsive grids, and
// solver-positioned floating elements. The stat tiles shown here are
// placeholders; the analytics data layer plugs in behind them.
//
// Build:
//   go build -o statdeck ./cmd/statdeck
//
// Using fyne-cross for mobile/desktop packaging:
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross android -arch=arm64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/statdeck/statdeck/internal/geom"
	"github.com/statdeck/statdeck/internal/layout"
	"github.com/statdeck/statdeck/internal/placement"
	"github.com/statdeck/statdeck/internal/surface"
	"github.com/statdeck/statdeck/internal/ui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "statdeck"})

	application := app.NewWithID("com.statdeck.app")
	deckTheme := ui.NewStatDeckTheme()
	application.Settings().SetTheme(deckTheme)
	window := application.NewWindow("StatDeck")

	host := surface.NewFyneHost(window)
	monitor := surface.NewMonitor(host, surface.WithLogger(logger))
	defer monitor.Close()

	registry := layout.NewRegistry()
	if err := registerUserPresets(registry); err != nil {
		logger.Warn("user grid presets ignored", "err", err)
	}

	tracker := placement.NewTracker()
	monitor.OnChange(func(cur, prev surface.State) {
		logger.Debug("surface changed",
			"device", cur.DeviceClass.String(),
			"orientation", cur.Orientation.String())
		tracker.Reposition(cur)
	})

	board := ui.NewGridBoard(registry, monitor, "card-grid", statTiles()...)
	monitor.OnChange(func(cur, prev surface.State) {
		if cur.DeviceClass != prev.DeviceClass {
			board.Refit()
			if deckTheme.SetDensityFor(cur.DeviceClass) {
				application.Settings().SetTheme(deckTheme)
			}
		}
	})

	help := widget.NewButton("?", nil)
	help.OnTapped = func() {
		overlay := ui.NewOverlay(window.Canvas(),
			widget.NewLabel("Stats refresh every minute."),
			monitor, tracker,
			func() (geom.Rect, bool) { return ui.RectOf(help), help.Visible() })
		overlay.ShowAt(ui.TooltipPreference, 4)
	}

	content := container.NewBorder(
		container.NewHBox(widget.NewLabel("StatDeck"), help), nil, nil, nil,
		board,
	)

	// The reporter wrapping the content is what feeds resize signals to the
	// surface host; Fyne offers no window resize callback.
	root := ui.NewSizeReporter(content, func(fyne.Size) {
		host.Report(surface.SignalResize)
	})

	window.SetContent(root)
	window.Resize(fyne.NewSize(1100, 720))
	window.CenterOnScreen()

	logger.Info("starting", "device", monitor.Current().DeviceClass.String())
	window.ShowAndRun()
}

// registerUserPresets merges ~/.statdeck/grids.toml over the built-in grid
// presets when the file exists.
func registerUserPresets(r *layout.Registry) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := filepath.Join(home, ".statdeck", "grids.toml")
	presets, err := layout.LoadPresets(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return layout.RegisterPresets(r, presets)
}

// statTiles builds placeholder dashboard tiles; the analytics layer
// replaces these with live stat cards.
func statTiles() []fyne.CanvasObject {
	names := []string{
		"Win rate", "K/D ratio", "Headshot %", "Matches played",
		"Avg. damage", "Accuracy", "MVPs", "Playtime",
	}
	tiles := make([]fyne.CanvasObject, len(names))
	for i, name := range names {
		tiles[i] = widget.NewCard(name, fmt.Sprintf("tile %d", i+1), widget.NewLabel("--"))
	}
	return tiles
}
