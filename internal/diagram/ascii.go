package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/emrekoc/gotrib/internal/trib"
)

// shades used to fill load bands, cycled per load in input order
var shades = []rune{'░', '▒', '▓', '█'}

// DrawASCIIPlan renders the transverse axis as a vertical strip: load
// bands shaded per load, beam lines, and tributary zone boundaries. The
// top of the strip is the upper system boundary.
func DrawASCIIPlan(res *trib.Result, loads []trib.RegionalLoad) string {
	var sb strings.Builder

	heightChars := 24
	widthChars := 30

	span := res.Upper - res.Lower
	if span <= 0 || len(res.Beams)+len(loads) == 0 {
		return ""
	}

	shadeFor := make(map[string]rune, len(loads))
	for i, l := range loads {
		shadeFor[l.Name] = shades[i%len(shades)]
	}

	// Row index for a coordinate; row 0 is the upper boundary.
	rowOf := func(y float64) int {
		r := int((res.Upper - y) / span * float64(heightChars))
		if r < 0 {
			r = 0
		}
		if r > heightChars {
			r = heightChars
		}
		return r
	}

	// Rows 0 and heightChars draw the frame; markers on the boundary are
	// clamped one row inward so they stay visible.
	innerRow := func(y float64) int {
		r := rowOf(y)
		if r < 1 {
			r = 1
		}
		if r > heightChars-1 {
			r = heightChars - 1
		}
		return r
	}

	beamRows := make(map[int]string, len(res.Beams))
	for _, br := range res.Beams {
		beamRows[innerRow(br.Beam.Position)] = br.Beam.Name
	}
	// Interior zone boundaries only; the outer ones coincide with the frame.
	zoneRows := make(map[int]float64)
	for i, br := range res.Beams {
		if i > 0 {
			zoneRows[innerRow(br.Zone.Lower)] = br.Zone.Lower
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  PLAN VIEW (transverse axis, top = upper boundary)\n")
	sb.WriteString("  ─────────────────────────────────────────────────\n")

	for i := 0; i <= heightChars; i++ {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ┌%s┐ y = %.3f\n", strings.Repeat("─", widthChars), res.Upper))
			continue
		}
		if i == heightChars {
			sb.WriteString(fmt.Sprintf("  └%s┘ y = %.3f\n", strings.Repeat("─", widthChars), res.Lower))
			continue
		}

		// Midpoint of the row in axis coordinates.
		y := res.Upper - (float64(i)+0.5)/float64(heightChars)*span

		fill := strings.Repeat(" ", widthChars)
		for _, s := range res.Segments {
			if s.YStart <= y && y < s.YEnd {
				fill = strings.Repeat(string(shadeFor[s.LoadName]), widthChars)
				break
			}
		}
		if name, ok := beamRows[i]; ok {
			sb.WriteString(fmt.Sprintf("  │%s│ ◄═ %s\n", strings.Repeat("═", widthChars), name))
			continue
		}
		if y, ok := zoneRows[i]; ok {
			sb.WriteString(fmt.Sprintf("  │%s│ ┄┄ zone boundary (y = %.3f)\n", fill, y))
			continue
		}
		sb.WriteString(fmt.Sprintf("  │%s│\n", fill))
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	for _, l := range loads {
		sb.WriteString(fmt.Sprintf("  %s = %s (%.3f kN/m², [%.3f, %.3f))\n",
			strings.Repeat(string(shadeFor[l.Name]), 3), l.Name, l.Intensity, l.YStart, l.YEnd))
	}
	sb.WriteString("  ═══ = beam, ┄┄ = tributary zone boundary\n")

	return sb.String()
}

// DrawIntensityProfile charts the load intensity q(y) across the system
// interval by sampling the segment list.
func DrawIntensityProfile(res *trib.Result, samples int) string {
	span := res.Upper - res.Lower
	if span <= 0 || samples < 2 {
		return ""
	}

	data := make([]float64, samples)
	for i := range data {
		y := res.Lower + (float64(i)+0.5)/float64(samples)*span
		for _, s := range res.Segments {
			if s.YStart <= y && y < s.YEnd {
				data[i] = s.Intensity
				break
			}
		}
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("q(y) kN/m², y ∈ [%.3f, %.3f] m", res.Lower, res.Upper)),
	)
	return "\n" + graph + "\n"
}
