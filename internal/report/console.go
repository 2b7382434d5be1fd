// Package report renders distribution results as text. It is a read-only
// consumer of the result model.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/emrekoc/gotrib/internal/trib"
)

const rule = "───────────────────────────────────────────────────────────────"

// Console renders the full calculation report for a distribution result.
// loads must be the same set the result was computed from; it is used to
// echo the inputs and for the conservation check.
func Console(res *trib.Result, loads []trib.RegionalLoad) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("═══════════════════════════════════════════════════════════════\n")
	sb.WriteString("        TRIBUTARY LOAD DISTRIBUTION - REGIONAL LOADS\n")
	sb.WriteString("═══════════════════════════════════════════════════════════════\n")
	sb.WriteString("\n")

	sb.WriteString("REGIONAL LOADS:\n")
	sb.WriteString(rule + "\n")
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tIntensity (kN/m²)\tExtent (m)\tWidth (m)\tKind\n")
	fmt.Fprintf(w, "  ────\t─────────────────\t──────────\t─────────\t────\n")
	for _, l := range loads {
		kind := string(l.Kind)
		if kind == "" {
			kind = "-"
		}
		fmt.Fprintf(w, "  %s\t%.3f\t[%.3f, %.3f)\t%.3f\t%s\n", l.Name, l.Intensity, l.YStart, l.YEnd, l.Width(), kind)
	}
	w.Flush()
	sb.WriteString("\n")

	sb.WriteString("TRIBUTARY ZONES:\n")
	sb.WriteString(rule + "\n")
	w = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam\tPosition (m)\tZone (m)\tWidth (m)\n")
	fmt.Fprintf(w, "  ────\t────────────\t────────\t─────────\n")
	for _, br := range res.Beams {
		fmt.Fprintf(w, "  %s\t%.3f\t[%.3f, %.3f]\t%.3f\n", br.Beam.Name, br.Beam.Position, br.Zone.Lower, br.Zone.Upper, br.Zone.Width())
	}
	w.Flush()
	sb.WriteString("\n")

	sb.WriteString("DISTRIBUTED LOADS:\n")
	sb.WriteString(rule + "\n")
	for _, br := range res.Beams {
		fmt.Fprintf(&sb, "  Beam: %s\n", br.Beam.Name)
		w = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		if len(br.Contributions) == 0 {
			fmt.Fprintf(w, "    (no load within tributary zone)\n")
		}
		for _, c := range br.Contributions {
			fmt.Fprintf(w, "    from %s\t[%.3f, %.3f)\tw = %.3f m\t→ %.3f kN/m\n", c.LoadName, c.YStart, c.YEnd, c.Width, c.Value)
		}
		fmt.Fprintf(w, "    Total:\t\t\t  %.3f kN/m\n", br.Total)
		w.Flush()
		sb.WriteString("\n")
	}

	sb.WriteString("SUMMARY:\n")
	sb.WriteString(rule + "\n")
	applied := appliedLoad(loads)
	systemWidth := res.Upper - res.Lower
	w = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  System interval:\t[%.3f, %.3f] m\n", res.Lower, res.Upper)
	fmt.Fprintf(w, "  Loaded width:\t%.3f of %.3f m", res.LoadedWidth(), systemWidth)
	if systemWidth-res.LoadedWidth() > trib.DefaultTol {
		fmt.Fprintf(w, " ⚠ (uncovered intervals carry zero load)")
	} else {
		fmt.Fprintf(w, " ✓")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Applied load:\t%.3f kN/m\n", applied)
	fmt.Fprintf(w, "  Carried by beams:\t%.3f kN/m\n", res.TotalLoad())
	w.Flush()
	sb.WriteString("\n")

	lines := make([]string, 0, len(res.Beams)+1)
	for _, br := range res.Beams {
		lines = append(lines, fmt.Sprintf("%s: w = %.3f kN/m", br.Beam.Name, br.Total))
	}
	sb.WriteString(SummaryBox("DISTRIBUTED LOAD PER BEAM", lines))

	return sb.String()
}

// appliedLoad sums intensity × width over all loads.
func appliedLoad(loads []trib.RegionalLoad) float64 {
	var total float64
	for _, l := range loads {
		total += l.Intensity * l.Width()
	}
	return total
}

// SummaryBox draws a double-ruled box around a title and result lines.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
