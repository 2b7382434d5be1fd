package report

import (
	"strings"
	"testing"

	"github.com/emrekoc/gotrib/internal/trib"
)

func TestConsole(t *testing.T) {
	loads := []trib.RegionalLoad{
		{Name: "F_0_L", Intensity: -0.72, YStart: 0.0, YEnd: 0.2, Kind: trib.KindDead},
		{Name: "G_0_L", Intensity: -0.72, YStart: 0.2, YEnd: 1.0, Kind: trib.KindLive},
	}
	beams := []trib.Beam{
		{Name: "P_L0_S0", Position: 0.0},
		{Name: "P_L1_S0", Position: 1.0},
	}
	res, err := trib.Distribute(loads, beams)
	if err != nil {
		t.Fatal(err)
	}

	out := Console(res, loads)

	for _, want := range []string{
		"REGIONAL LOADS:",
		"TRIBUTARY ZONES:",
		"DISTRIBUTED LOADS:",
		"SUMMARY:",
		"F_0_L", "G_0_L",
		"P_L0_S0", "P_L1_S0",
		"-0.360 kN/m",
		"DISTRIBUTED LOAD PER BEAM",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Fully covered system: no coverage warning.
	if strings.Contains(out, "⚠") {
		t.Errorf("unexpected coverage warning in:\n%s", out)
	}
}

func TestConsoleFlagsUncoveredGap(t *testing.T) {
	loads := []trib.RegionalLoad{
		{Name: "F", Intensity: -1.0, YStart: 0.0, YEnd: 1.0},
	}
	beams := []trib.Beam{
		{Name: "B1", Position: 0.0},
		{Name: "B2", Position: 2.0},
	}
	res, err := trib.Distribute(loads, beams)
	if err != nil {
		t.Fatal(err)
	}

	out := Console(res, loads)
	if !strings.Contains(out, "⚠") {
		t.Errorf("expected coverage warning for gap, got:\n%s", out)
	}
	if !strings.Contains(out, "(no load within tributary zone)") {
		t.Errorf("expected empty-zone note for B2, got:\n%s", out)
	}
}

func TestSummaryBox(t *testing.T) {
	out := SummaryBox("TITLE", []string{"line one", "a longer line two"})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "TITLE") {
		t.Errorf("missing title: %q", lines[1])
	}
	if !strings.Contains(lines[3], "line one") || !strings.Contains(lines[4], "a longer line two") {
		t.Errorf("missing content lines:\n%s", out)
	}
}
