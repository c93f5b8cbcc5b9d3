package spark

import (
	"math"
	"testing"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/classify"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/domain"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/normalize"
)

func TestProjectTooFewPoints(t *testing.T) {
	if pts := Project(nil, 100, 30); pts != nil {
		t.Errorf("Project(nil) = %v, want nil", pts)
	}
	if pts := Project([]float64{5}, 100, 30); pts != nil {
		t.Errorf("Project(singleton) = %v, want nil", pts)
	}
}

func TestProjectZeroRange(t *testing.T) {
	pts := Project([]float64{1, 1, 1}, 100, 30)
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("point %d is NaN: %+v", i, p)
		}
		if p.Y != 30 {
			t.Errorf("point %d Y = %v, want 30 (baseline)", i, p.Y)
		}
	}
}

func TestProjectScaling(t *testing.T) {
	pts := Project([]float64{0, 5, 10}, 100, 30)
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	// Endpoints span the full width.
	if pts[0].X != 0 || pts[2].X != 100 {
		t.Errorf("X endpoints = %v, %v, want 0, 100", pts[0].X, pts[2].X)
	}
	// Min maps to the bottom, max to the top.
	if pts[0].Y != 30 {
		t.Errorf("min Y = %v, want 30", pts[0].Y)
	}
	if pts[2].Y != 0 {
		t.Errorf("max Y = %v, want 0", pts[2].Y)
	}
	if pts[1].Y != 15 {
		t.Errorf("mid Y = %v, want 15", pts[1].Y)
	}
}

func TestProjectIdempotent(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5}
	a := Project(in, 80, 24)
	b := Project(in, 80, 24)
	if len(a) != len(b) {
		t.Fatal("projections differ in length")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLine(t *testing.T) {
	if s := Line([]float64{1}, 10); s != "" {
		t.Errorf("Line(singleton) = %q, want empty", s)
	}
	s := Line([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	if len([]rune(s)) != 8 {
		t.Errorf("Line width = %d, want 8", len([]rune(s)))
	}
	runes := []rune(s)
	if runes[0] != '▁' || runes[len(runes)-1] != '█' {
		t.Errorf("Line endpoints = %q...%q, want lowest...highest", runes[0], runes[len(runes)-1])
	}
}

func TestBuildChartEmpty(t *testing.T) {
	s := BuildChart(nil, &normalize.Plan{Entry: 100, EntryOK: true}, nil, nil, nil)
	if len(s.Levels) != 0 || len(s.Markers) != 0 {
		t.Error("empty bar sequence must produce no overlays")
	}
}

func TestBuildChartOverlays(t *testing.T) {
	bars := []domain.Bar{
		{Time: 1, Open: 10, High: 11, Low: 9, Close: 10.5},
		{Time: 2, Open: 10.5, High: 12, Low: 10, Close: 11.5},
	}
	plan := &normalize.Plan{
		Entry: 100, EntryOK: true,
		TargetPx: 120, TargetOK: true,
		Stop: 90, StopOK: true,
	}
	patterns := []domain.Pattern{{Name: "Cup and Handle", Status: "Bullish Breakout"}}
	vpa := []domain.VPASignal{{Name: "Selling Climax", Bias: "Bearish"}}

	s := BuildChart(bars, plan, []float64{10, 11}, patterns, vpa)

	if len(s.Levels) != 3 {
		t.Fatalf("got %d levels, want 3", len(s.Levels))
	}
	if s.Levels[1].Name != "Target" || s.Levels[1].Tone != classify.ToneBullish {
		t.Errorf("target level = %+v", s.Levels[1])
	}
	if len(s.Markers) != 2 {
		t.Fatalf("got %d markers, want 2", len(s.Markers))
	}
	for _, m := range s.Markers {
		if m.Time != 2 {
			t.Errorf("marker %q at time %d, want most recent (2)", m.Label, m.Time)
		}
	}
	if !s.Markers[0].Up {
		t.Error("bullish pattern marker should point up")
	}
	if s.Markers[1].Up {
		t.Error("bearish VPA marker should point down")
	}
}
