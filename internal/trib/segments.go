package trib

import "sort"

// BuildSegments partitions the axis between consecutive critical points
// into segments tagged with the intensity of the load covering them.
//
// A load covers the interval [y1, y2] when load.YStart ≤ y1+tol and
// load.YEnd ≥ y2−tol. When several loads qualify (overlapping inputs) the
// one with the smallest YStart wins; this is a deterministic tie-break,
// not superposition. Intervals covered by no load emit no segment and
// therefore carry zero load everywhere downstream.
func BuildSegments(points []float64, loads []RegionalLoad, tol float64) []Segment {
	if len(points) < 2 || len(loads) == 0 {
		return nil
	}

	byStart := make([]RegionalLoad, len(loads))
	copy(byStart, loads)
	sort.SliceStable(byStart, func(i, j int) bool {
		return byStart[i].YStart < byStart[j].YStart
	})

	var segments []Segment
	for i := 0; i < len(points)-1; i++ {
		y1, y2 := points[i], points[i+1]
		if y2-y1 <= tol {
			continue
		}
		for _, l := range byStart {
			if l.YStart <= y1+tol && l.YEnd >= y2-tol {
				segments = append(segments, Segment{
					YStart:    y1,
					YEnd:      y2,
					LoadName:  l.Name,
					Intensity: l.Intensity,
				})
				break
			}
		}
	}
	return segments
}
