package trib

import "sort"

// TributaryZones assigns each beam the interval it is responsible for
// under the midpoint-to-neighbor rule: interior bounds sit halfway between
// adjacent beams, edge beams extend out to the system boundary. The beams
// slice must already be sorted by ascending position; the returned zones
// are contiguous and together span exactly [lower, upper].
//
// With a single beam the rule degenerates: its zone is the whole boundary
// interval.
func TributaryZones(beams []Beam, lower, upper float64) []Zone {
	zones := make([]Zone, len(beams))
	for i, b := range beams {
		z := Zone{Lower: lower, Upper: upper}
		if i > 0 {
			z.Lower = (beams[i-1].Position + b.Position) / 2
		}
		if i < len(beams)-1 {
			z.Upper = (b.Position + beams[i+1].Position) / 2
		}
		zones[i] = z
	}
	return zones
}

// sortBeams returns a copy of beams ordered by ascending position.
func sortBeams(beams []Beam) []Beam {
	sorted := make([]Beam, len(beams))
	copy(sorted, beams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return sorted
}
