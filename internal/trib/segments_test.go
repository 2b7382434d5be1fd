package trib

import "testing"

func TestBuildSegments(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
		loads  []RegionalLoad
		want   []Segment
	}{
		{
			name:   "GaplessTiling",
			points: []float64{0.0, 0.2, 1.0},
			loads: []RegionalLoad{
				{Name: "F", Intensity: -0.72, YStart: 0.0, YEnd: 0.2},
				{Name: "G", Intensity: -0.72, YStart: 0.2, YEnd: 1.0},
			},
			want: []Segment{
				{YStart: 0.0, YEnd: 0.2, LoadName: "F", Intensity: -0.72},
				{YStart: 0.2, YEnd: 1.0, LoadName: "G", Intensity: -0.72},
			},
		},
		{
			name:   "UncoveredGapEmitsNothing",
			points: []float64{0.0, 1.0, 2.0, 3.0},
			loads: []RegionalLoad{
				{Name: "F", Intensity: -1.5, YStart: 0.0, YEnd: 1.0},
				{Name: "G", Intensity: -2.0, YStart: 2.0, YEnd: 3.0},
			},
			want: []Segment{
				{YStart: 0.0, YEnd: 1.0, LoadName: "F", Intensity: -1.5},
				{YStart: 2.0, YEnd: 3.0, LoadName: "G", Intensity: -2.0},
			},
		},
		{
			name:   "OverlapSmallestStartWins",
			points: []float64{0.0, 0.5, 1.0, 1.5},
			loads: []RegionalLoad{
				{Name: "B", Intensity: -2.0, YStart: 0.5, YEnd: 1.5},
				{Name: "A", Intensity: -1.0, YStart: 0.0, YEnd: 1.0},
			},
			want: []Segment{
				{YStart: 0.0, YEnd: 0.5, LoadName: "A", Intensity: -1.0},
				{YStart: 0.5, YEnd: 1.0, LoadName: "A", Intensity: -1.0},
				{YStart: 1.0, YEnd: 1.5, LoadName: "B", Intensity: -2.0},
			},
		},
		{
			name:   "LoadSplitByInteriorPoint",
			points: []float64{0.0, 0.8, 1.0},
			loads: []RegionalLoad{
				{Name: "F", Intensity: -0.72, YStart: 0.0, YEnd: 1.0},
			},
			want: []Segment{
				{YStart: 0.0, YEnd: 0.8, LoadName: "F", Intensity: -0.72},
				{YStart: 0.8, YEnd: 1.0, LoadName: "F", Intensity: -0.72},
			},
		},
		{
			name:   "PartialCoverageSkipsInterval",
			points: []float64{0.0, 0.4, 1.0},
			loads: []RegionalLoad{
				// covers [0, 0.4] but only part of [0.4, 1.0]
				{Name: "F", Intensity: -1.0, YStart: 0.0, YEnd: 0.6},
			},
			want: []Segment{
				{YStart: 0.0, YEnd: 0.4, LoadName: "F", Intensity: -1.0},
			},
		},
		{
			name:   "NoLoads",
			points: []float64{0.0, 1.0},
			want:   nil,
		},
		{
			name:   "SinglePoint",
			points: []float64{1.0},
			loads:  []RegionalLoad{{Name: "F", YStart: 0.0, YEnd: 2.0}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSegments(tt.points, tt.loads, DefaultTol)
			if len(got) != len(tt.want) {
				t.Fatalf("segments = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].LoadName != tt.want[i].LoadName ||
					!approx(got[i].YStart, tt.want[i].YStart) ||
					!approx(got[i].YEnd, tt.want[i].YEnd) ||
					!approx(got[i].Intensity, tt.want[i].Intensity) {
					t.Errorf("segments[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildSegmentsToleratesBoundaryJitter(t *testing.T) {
	// Load edges within tolerance of the critical points still count as
	// covering the interval.
	points := []float64{0.0, 1.0}
	loads := []RegionalLoad{
		{Name: "F", Intensity: -1.0, YStart: 1e-12, YEnd: 1.0 - 1e-12},
	}

	got := BuildSegments(points, loads, DefaultTol)
	if len(got) != 1 || got[0].LoadName != "F" {
		t.Fatalf("segments = %v, want single segment covered by F", got)
	}
}
