package trib

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyModel is returned when there is nothing to distribute: neither
// loads nor beams were supplied.
var ErrEmptyModel = errors.New("at least one load or one beam is required")

// CriticalPoints collects every distinguished coordinate along the
// transverse axis: load edges, beam positions and the system extremes.
// It returns the sorted, tolerance-deduplicated coordinate list and the
// sorted system boundary list (beam positions plus the extremes of the
// loaded region; with no loads the extremes fall back to the outermost
// beam positions).
func CriticalPoints(loads []RegionalLoad, beams []Beam, tol float64) (points, boundary []float64, err error) {
	if len(loads) == 0 && len(beams) == 0 {
		return nil, nil, fmt.Errorf("critical points: %w", ErrEmptyModel)
	}

	var raw []float64
	for _, l := range loads {
		raw = append(raw, l.YStart, l.YEnd)
	}
	for _, b := range beams {
		raw = append(raw, b.Position)
	}
	points = dedupeSorted(raw, tol)

	boundary = make([]float64, 0, len(beams)+2)
	for _, b := range beams {
		boundary = append(boundary, b.Position)
	}
	if len(loads) > 0 {
		loadMin, loadMax := loads[0].YStart, loads[0].YEnd
		for _, l := range loads[1:] {
			if l.YStart < loadMin {
				loadMin = l.YStart
			}
			if l.YEnd > loadMax {
				loadMax = l.YEnd
			}
		}
		boundary = append(boundary, loadMin, loadMax)
	}
	boundary = dedupeSorted(boundary, tol)

	return points, boundary, nil
}

// dedupeSorted sorts vs ascending and removes values closer than tol to
// their predecessor. The result is strictly increasing.
func dedupeSorted(vs []float64, tol float64) []float64 {
	if len(vs) == 0 {
		return nil
	}
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v-out[len(out)-1] > tol {
			out = append(out, v)
		}
	}
	return out
}
