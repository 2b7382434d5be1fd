// Package diagram renders framing plans and distribution results, either
// as ASCII art for the terminal or as image files via gonum/plot. It only
// reads the result model.
package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/emrekoc/gotrib/internal/trib"
)

// namedColors maps project-file color names to fill colors.
var namedColors = map[string]color.RGBA{
	"red":    {R: 220, G: 60, B: 60, A: 150},
	"green":  {R: 60, G: 160, B: 60, A: 150},
	"blue":   {R: 100, G: 149, B: 237, A: 150},
	"orange": {R: 255, G: 165, B: 0, A: 150},
	"purple": {R: 150, G: 80, B: 180, A: 150},
	"gray":   {R: 130, G: 130, B: 130, A: 150},
}

func fillColor(name string) color.RGBA {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return namedColors["blue"]
}

// ExportPlanDiagram exports the framing plan to an image file: load
// rectangles, beam lines and tributary zone boundaries. The x axis runs
// along the beams, the y axis is the transverse axis. The output format
// follows the file extension (.png, .svg or .pdf; anything else gets .png
// appended).
func ExportPlanDiagram(res *trib.Result, loads []trib.RegionalLoad, filename string) error {
	p := plot.New()
	p.Title.Text = "Regional Load Distribution"
	p.X.Label.Text = "Along beams (m)"
	p.Y.Label.Text = "Transverse axis (m)"

	planLength := 1.0
	for _, l := range loads {
		if l.Length > planLength {
			planLength = l.Length
		}
	}
	for _, br := range res.Beams {
		if br.Beam.Length > planLength {
			planLength = br.Beam.Length
		}
	}

	// Load rectangles
	for _, l := range loads {
		if l.Width() <= 0 {
			continue
		}
		length := l.Length
		if length <= 0 {
			length = planLength
		}
		rect, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: l.YStart},
			{X: length, Y: l.YStart},
			{X: length, Y: l.YEnd},
			{X: 0, Y: l.YEnd},
		})
		if err != nil {
			return err
		}
		rect.Color = fillColor(l.Color)
		rect.LineStyle.Color = color.Black
		p.Add(rect)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: length / 2, Y: (l.YStart + l.YEnd) / 2}},
			Labels: []string{fmt.Sprintf("%s (%.2f kN/m²)", l.Name, l.Intensity)},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	// Beam lines with distributed load annotations
	for _, br := range res.Beams {
		length := br.Beam.Length
		if length <= 0 {
			length = planLength
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: br.Beam.Position},
			{X: length, Y: br.Beam.Position},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(3)
		line.LineStyle.Color = color.Black
		p.Add(line)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: length, Y: br.Beam.Position}},
			Labels: []string{fmt.Sprintf("%s: %.3f kN/m", br.Beam.Name, br.Total)},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	// Interior tributary zone boundaries as dashed red lines
	for i, br := range res.Beams {
		if i == 0 {
			continue
		}
		boundary, err := plotter.NewLine(plotter.XYs{
			{X: -planLength * 0.05, Y: br.Zone.Lower},
			{X: planLength * 1.05, Y: br.Zone.Lower},
		})
		if err != nil {
			return err
		}
		boundary.LineStyle.Width = vg.Points(1.5)
		boundary.LineStyle.Color = color.RGBA{R: 255, A: 255}
		boundary.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(boundary)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
