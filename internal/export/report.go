// Package export renders layout diagnostics to shareable files. The PDF
// report is the artifact attached to device-specific layout bug reports: a
// scaled diagram of the surface with its safe area plus the resolved grid
// for every registered config.
package export

import (
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/statdeck/statdeck/internal/layout"
	"github.com/statdeck/statdeck/internal/surface"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	diagramMaxH  = 120.0
	tableRowH    = 7.0
)

// WriteLayoutReport generates a one-page PDF describing the surface state
// and the grid layout every registered config resolves to at the surface
// width.
func WriteLayoutReport(path string, s surface.State, registry *layout.Registry) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("no surface geometry to report")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, s)
	diagramBottom := renderSurfaceDiagram(pdf, s)
	renderGridTable(pdf, s, registry, diagramBottom+8)

	return pdf.OutputFileAndClose(path)
}

// renderHeader draws the title and the surface classification line.
func renderHeader(pdf *fpdf.Fpdf, s surface.State) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "StatDeck layout report", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	line := fmt.Sprintf("Surface: %.0f x %.0f @ %.1fx | %s | %s | platform %s",
		s.Width, s.Height, s.PixelDensity,
		s.DeviceClass.String(), s.Orientation.String(), s.Platform.String())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line, "", 0, "L", false, 0, "")
}

// renderSurfaceDiagram draws the surface outline with the safe area shaded,
// scaled to fit the page. Returns the y coordinate below the diagram.
func renderSurfaceDiagram(pdf *fpdf.Fpdf, s surface.State) float64 {
	top := marginTop + headerHeight + 10.0
	maxW := pageWidth - marginLeft - marginRight
	scale := maxW / float64(s.Width)
	if hScale := diagramMaxH / float64(s.Height); hScale < scale {
		scale = hScale
	}

	w := float64(s.Width) * scale
	h := float64(s.Height) * scale
	x := marginLeft + (maxW-w)/2

	// Surface outline
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.4)
	pdf.Rect(x, top, w, h, "D")

	// Safe area
	safe := s.SafeBounds()
	pdf.SetFillColor(220, 235, 220)
	pdf.SetDrawColor(76, 175, 80)
	pdf.SetLineWidth(0.2)
	pdf.Rect(
		x+float64(safe.X)*scale,
		top+float64(safe.Y)*scale,
		float64(safe.Width)*scale,
		float64(safe.Height)*scale,
		"FD",
	)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(x, top+h+2)
	label := fmt.Sprintf("safe area insets T%.0f R%.0f B%.0f L%.0f",
		s.SafeArea.Top, s.SafeArea.Right, s.SafeArea.Bottom, s.SafeArea.Left)
	pdf.CellFormat(w, 4, label, "", 0, "L", false, 0, "")

	return top + h + 8
}

// renderGridTable lists each registered config with its resolved layout at
// the full surface width.
func renderGridTable(pdf *fpdf.Fpdf, s surface.State, registry *layout.Registry, top float64) {
	names := registry.Names()
	sort.Strings(names)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, top)
	pdf.CellFormat(60, tableRowH, "Grid config", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, tableRowH, "Columns", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, tableRowH, "Column width", "B", 0, "R", false, 0, "")
	pdf.CellFormat(20, tableRowH, "Gap", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, tableRowH, "Method", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	y := top + tableRowH
	for _, name := range names {
		resolved, err := registry.Resolve(name, s.Width, s.DeviceClass)
		if err != nil {
			continue
		}
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(60, tableRowH, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, tableRowH, fmt.Sprintf("%d", resolved.Columns), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, tableRowH, fmt.Sprintf("%.1f", resolved.ColumnWidth), "", 0, "R", false, 0, "")
		pdf.CellFormat(20, tableRowH, fmt.Sprintf("%.0f", resolved.Gap), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, tableRowH, string(resolved.Method), "", 1, "L", false, 0, "")
		y += tableRowH
	}
}
