package trib

// DefaultTol is the shared coordinate tolerance used for deduplication,
// segment coverage checks and overlap tests. Every comparison in the
// pipeline goes through the same tolerance so a boundary coordinate is
// classified consistently in all stages.
const DefaultTol = 1e-9

// LoadKind classifies a regional load for factored load combinations.
type LoadKind string

const (
	KindDead       LoadKind = "dead"
	KindLive       LoadKind = "live"
	KindRoof       LoadKind = "roof"
	KindWind       LoadKind = "wind"
	KindEarthquake LoadKind = "earthquake"
	KindRain       LoadKind = "rain"
)

// RegionalLoad represents an area load applied over an interval of the
// transverse axis. Intensity is force per unit area (kN/m²); the sign
// convention follows the caller (downward loads are typically negative).
// The interval is [YStart, YEnd) and its width must be non-negative.
type RegionalLoad struct {
	Name      string
	Intensity float64 // kN/m²
	YStart    float64 // m, along the transverse axis
	YEnd      float64 // m
	Length    float64 // m, along the beams (diagrams only)
	Kind      LoadKind // classification for factored load combinations
	Color     string  // diagrams only
}

// Width returns the transverse extent of the load.
func (l RegionalLoad) Width() float64 {
	return l.YEnd - l.YStart
}

// Beam represents a linear support at a fixed transverse position.
type Beam struct {
	Name     string
	Position float64 // m, along the transverse axis
	Length   float64 // m (diagrams only)
}

// Segment is a maximal interval between two consecutive critical
// coordinates over which a single load's intensity applies. Intervals not
// covered by any load produce no segment.
type Segment struct {
	YStart    float64
	YEnd      float64
	LoadName  string
	Intensity float64 // kN/m²
}

// Width returns the transverse extent of the segment.
func (s Segment) Width() float64 {
	return s.YEnd - s.YStart
}

// Zone is the tributary interval a beam is responsible for.
type Zone struct {
	Lower float64
	Upper float64
}

// Width returns the tributary width of the zone.
func (z Zone) Width() float64 {
	return z.Upper - z.Lower
}

// Contribution is the share of one load segment carried by a beam. A beam
// may hold several contributions with the same load name when the load
// spans multiple critical intervals; they are reported separately to keep
// per-interval provenance.
type Contribution struct {
	LoadName string
	YStart   float64
	YEnd     float64
	Width    float64 // m
	Value    float64 // kN/m = intensity × overlap width
}

// BeamResult holds the distributed load assigned to one beam.
type BeamResult struct {
	Beam          Beam
	Zone          Zone
	Contributions []Contribution
	Total         float64 // kN/m
}

// Result is the full outcome of one distribution pass. All fields are
// derived from scratch on every run; callers may treat them as immutable.
type Result struct {
	Points   []float64 // sorted, deduplicated critical coordinates
	Boundary []float64 // sorted system boundary coordinates
	Lower    float64   // system lower boundary
	Upper    float64   // system upper boundary
	Segments []Segment
	Beams    []BeamResult
}

// TotalLoad returns the sum of all beam totals (kN/m).
func (r *Result) TotalLoad() float64 {
	var total float64
	for _, br := range r.Beams {
		total += br.Total
	}
	return total
}

// LoadedWidth returns the combined width of all segments, i.e. the part of
// the system interval actually covered by loads.
func (r *Result) LoadedWidth() float64 {
	var w float64
	for _, s := range r.Segments {
		w += s.Width()
	}
	return w
}
