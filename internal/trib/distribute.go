// Package trib distributes regional (area) loads onto parallel beams
// along the transverse axis using the tributary-width rule: each beam
// carries the load within half the distance to its neighbors, and the
// outermost beams carry everything out to the system boundary.
//
// The calculation is a single synchronous pass with four stages: critical
// point extraction, segment building, tributary zone assignment and
// contribution accumulation. The pass is pure — inputs are never mutated
// and every run returns a fresh Result, so repeated runs on the same
// inputs are bit-identical.
package trib

import "fmt"

// Calculator performs the tributary-width distribution of a set of
// regional loads onto a set of beams.
type Calculator struct {
	Loads []RegionalLoad
	Beams []Beam

	// Tol is the coordinate comparison tolerance used throughout the
	// pipeline. New sets it to DefaultTol.
	Tol float64
}

// New creates a Calculator with the default tolerance.
func New(loads []RegionalLoad, beams []Beam) *Calculator {
	return &Calculator{Loads: loads, Beams: beams, Tol: DefaultTol}
}

// Distribute runs the full pipeline and returns the per-beam results.
//
// It fails when the model is structurally insufficient (no loads and no
// beams, or a load with negative width); on failure no partial result is
// returned. Loads that overlap resolve deterministically (see
// BuildSegments) and axis intervals covered by no load contribute zero.
func (c *Calculator) Distribute() (*Result, error) {
	for _, l := range c.Loads {
		if l.Width() < -c.Tol {
			return nil, fmt.Errorf("load %q: negative width (y_start=%g, y_end=%g)", l.Name, l.YStart, l.YEnd)
		}
	}

	points, boundary, err := CriticalPoints(c.Loads, c.Beams, c.Tol)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Points:   points,
		Boundary: boundary,
		Lower:    boundary[0],
		Upper:    boundary[len(boundary)-1],
	}
	res.Segments = BuildSegments(points, c.Loads, c.Tol)

	beams := sortBeams(c.Beams)
	zones := TributaryZones(beams, res.Lower, res.Upper)

	res.Beams = make([]BeamResult, len(beams))
	for i, b := range beams {
		br := BeamResult{Beam: b, Zone: zones[i]}
		for _, s := range res.Segments {
			start := max(br.Zone.Lower, s.YStart)
			end := min(br.Zone.Upper, s.YEnd)
			if end-start <= c.Tol {
				continue
			}
			width := end - start
			contrib := Contribution{
				LoadName: s.LoadName,
				YStart:   start,
				YEnd:     end,
				Width:    width,
				Value:    s.Intensity * width,
			}
			br.Contributions = append(br.Contributions, contrib)
			br.Total += contrib.Value
		}
		res.Beams[i] = br
	}

	return res, nil
}

// Distribute is a convenience wrapper around New(...).Distribute().
func Distribute(loads []RegionalLoad, beams []Beam) (*Result, error) {
	return New(loads, beams).Distribute()
}
