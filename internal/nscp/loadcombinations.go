package nscp

import (
	"math"

	"github.com/emrekoc/gotrib/internal/trib"
)

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for common gravity-load scenarios
// These are the most frequently used combinations for floor framing
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LineLoads holds unfactored distributed line loads (kN/m) from different
// load types, as accumulated on a single beam.
type LineLoads struct {
	Dead       float64 // Line load due to dead load (kN/m)
	Live       float64 // Line load due to live load (kN/m)
	Roof       float64 // Line load due to roof live load (kN/m)
	Wind       float64 // Line load due to wind load (kN/m)
	Earthquake float64 // Line load due to earthquake load (kN/m)
	Rain       float64 // Line load due to rain load (kN/m)
}

// IsZero reports whether no line load component is set.
func (w LineLoads) IsZero() bool {
	return w.Dead == 0 && w.Live == 0 && w.Roof == 0 &&
		w.Wind == 0 && w.Earthquake == 0 && w.Rain == 0
}

// CalculateFactoredLoad calculates the factored line load (kN/m) for a
// given load combination.
func (lc LoadCombination) CalculateFactoredLoad(loads LineLoads) float64 {
	return lc.Dead*loads.Dead +
		lc.Live*loads.Live +
		lc.Roof*loads.Roof +
		lc.Wind*loads.Wind +
		lc.Earthquake*loads.Earthquake +
		lc.Rain*loads.Rain
}

// CalculateGoverningLoad finds the factored line load of largest magnitude
// from all combinations. Magnitude is compared in absolute value since
// gravity loads are commonly carried with a negative (downward) sign.
func CalculateGoverningLoad(loads LineLoads, combinations []LoadCombination) (float64, LoadCombination) {
	var maxLoad float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		wu := combo.CalculateFactoredLoad(loads)
		if math.Abs(wu) > math.Abs(maxLoad) {
			maxLoad = wu
			governingCombo = combo
		}
	}

	return maxLoad, governingCombo
}

// LineLoadsFor splits a beam's service contributions into per-type line
// loads by the Kind of the originating regional load. Contributions from
// loads with no declared kind are counted as dead load.
func LineLoadsFor(br trib.BeamResult, loads []trib.RegionalLoad) LineLoads {
	kinds := make(map[string]trib.LoadKind, len(loads))
	for _, l := range loads {
		kinds[l.Name] = l.Kind
	}

	var w LineLoads
	for _, c := range br.Contributions {
		switch kinds[c.LoadName] {
		case trib.KindLive:
			w.Live += c.Value
		case trib.KindRoof:
			w.Roof += c.Value
		case trib.KindWind:
			w.Wind += c.Value
		case trib.KindEarthquake:
			w.Earthquake += c.Value
		case trib.KindRain:
			w.Rain += c.Value
		default:
			w.Dead += c.Value
		}
	}
	return w
}
