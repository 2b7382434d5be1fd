package trib

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !approx(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestCriticalPoints(t *testing.T) {
	tests := []struct {
		name         string
		loads        []RegionalLoad
		beams        []Beam
		wantPoints   []float64
		wantBoundary []float64
	}{
		{
			name: "LoadEdgesAndBeams",
			loads: []RegionalLoad{
				{Name: "F", YStart: 0.0, YEnd: 0.2},
				{Name: "G", YStart: 0.2, YEnd: 1.0},
			},
			beams: []Beam{
				{Name: "B1", Position: 0.0},
				{Name: "B2", Position: 1.0},
			},
			wantPoints:   []float64{0.0, 0.2, 1.0},
			wantBoundary: []float64{0.0, 1.0},
		},
		{
			name: "UnsortedInputs",
			loads: []RegionalLoad{
				{Name: "G", YStart: 1.0, YEnd: 2.0},
				{Name: "F", YStart: 0.0, YEnd: 1.0},
			},
			beams: []Beam{
				{Name: "B2", Position: 1.8},
				{Name: "B1", Position: 0.8},
			},
			wantPoints:   []float64{0.0, 0.8, 1.0, 1.8, 2.0},
			wantBoundary: []float64{0.0, 0.8, 1.8, 2.0},
		},
		{
			name: "DedupWithinTolerance",
			loads: []RegionalLoad{
				{Name: "F", YStart: 0.0, YEnd: 0.5},
				{Name: "G", YStart: 0.5 + 1e-12, YEnd: 1.0},
			},
			beams:        []Beam{{Name: "B1", Position: 0.5}},
			wantPoints:   []float64{0.0, 0.5, 1.0},
			wantBoundary: []float64{0.0, 0.5, 1.0},
		},
		{
			name:  "NoLoadsFallsBackToBeams",
			beams: []Beam{{Name: "B1", Position: 0.4}, {Name: "B2", Position: 2.1}},
			wantPoints:   []float64{0.4, 2.1},
			wantBoundary: []float64{0.4, 2.1},
		},
		{
			name: "NoBeams",
			loads: []RegionalLoad{
				{Name: "F", YStart: -1.0, YEnd: 1.0},
			},
			wantPoints:   []float64{-1.0, 1.0},
			wantBoundary: []float64{-1.0, 1.0},
		},
		{
			name: "BeamOutsideLoadedRegion",
			loads: []RegionalLoad{
				{Name: "F", YStart: 0.0, YEnd: 1.0},
			},
			beams:        []Beam{{Name: "B1", Position: 1.5}},
			wantPoints:   []float64{0.0, 1.0, 1.5},
			wantBoundary: []float64{0.0, 1.0, 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, boundary, err := CriticalPoints(tt.loads, tt.beams, DefaultTol)
			if err != nil {
				t.Fatalf("CriticalPoints() error = %v", err)
			}
			if !approxSlice(points, tt.wantPoints) {
				t.Errorf("points = %v, want %v", points, tt.wantPoints)
			}
			if !approxSlice(boundary, tt.wantBoundary) {
				t.Errorf("boundary = %v, want %v", boundary, tt.wantBoundary)
			}
		})
	}
}

func TestCriticalPointsEmptyModel(t *testing.T) {
	_, _, err := CriticalPoints(nil, nil, DefaultTol)
	if !errors.Is(err, ErrEmptyModel) {
		t.Fatalf("error = %v, want ErrEmptyModel", err)
	}
}
