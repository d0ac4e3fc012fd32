package main

import (
	"testing"
	"time"

	"github.com/andareed/siftly-chart/chart"
	"github.com/andareed/siftly-chart/dataset"
)

func TestShiftWindowKeepsWidthInsideDataset(t *testing.T) {
	tests := []struct {
		name  string
		v     chart.Viewport
		delta int
		want  chart.Viewport
	}{
		{"right", chart.Viewport{Left: 10, Right: 20}, 5, chart.Viewport{Left: 15, Right: 25}},
		{"left", chart.Viewport{Left: 10, Right: 20}, -5, chart.Viewport{Left: 5, Right: 15}},
		{"clamped left", chart.Viewport{Left: 2, Right: 12}, -5, chart.Viewport{Left: 0, Right: 10}},
		{"clamped right", chart.Viewport{Left: 80, Right: 95}, 10, chart.Viewport{Left: 84, Right: 99}},
		{"full width", chart.Viewport{Left: 0, Right: 99}, 3, chart.Viewport{Left: 0, Right: 99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shiftWindow(tt.v, 100, tt.delta); got != tt.want {
				t.Errorf("shiftWindow(%s, %d) = %s, want %s", tt.v, tt.delta, got, tt.want)
			}
		})
	}
}

func TestResizeWindow(t *testing.T) {
	got, ok := resizeWindow(chart.Viewport{Left: 10, Right: 20}, 100, 3)
	if !ok || got != (chart.Viewport{Left: 7, Right: 23}) {
		t.Errorf("grow = %s, %v", got, ok)
	}
	got, ok = resizeWindow(chart.Viewport{Left: 1, Right: 98}, 100, 5)
	if !ok || got != (chart.Viewport{Left: 0, Right: 99}) {
		t.Errorf("grow past edges = %s, %v", got, ok)
	}
	if _, ok := resizeWindow(chart.Viewport{Left: 10, Right: 12}, 100, -1); ok {
		t.Error("shrinking to a single point should be rejected")
	}
}

func TestBrushMapping(t *testing.T) {
	b := brushUI{barLeft: 10, barWidth: 11, n: 101}
	if got := b.posOf(0); got != 0 {
		t.Errorf("posOf(0) = %d", got)
	}
	if got := b.posOf(100); got != 10 {
		t.Errorf("posOf(100) = %d", got)
	}
	if got := b.indexAt(15); got != 50 {
		t.Errorf("indexAt(15) = %d, want 50", got)
	}
	if got := b.indexAt(0); got != 0 {
		t.Errorf("indexAt left of bar = %d, want 0", got)
	}
	if got := b.indexAt(500); got != 100 {
		t.Errorf("indexAt right of bar = %d, want 100", got)
	}
	if !b.contains(12, b.top+1) || b.contains(12, b.top+brushHeight) {
		t.Error("contains should cover exactly the brush rows")
	}
}

func TestScrubberBar(t *testing.T) {
	if got := scrubberBar(10, 2, 5); got != "--[==]----" {
		t.Errorf("scrubberBar = %q", got)
	}
	if got := scrubberBar(5, 4, 0); got != "[===]" {
		t.Errorf("reversed scrubberBar = %q", got)
	}
}

func TestSparklineScalesFirstSeries(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]dataset.DataPoint, 4)
	for i := range points {
		points[i] = dataset.DataPoint{
			Index:     i,
			Timestamp: start.AddDate(0, 0, i),
			Values:    []float64{float64(i), 1000},
		}
	}
	d, err := dataset.New([]string{"a", "b"}, points)
	if err != nil {
		t.Fatal(err)
	}
	got := string(sparkline(d, 4))
	if got != "▁▃▅█" {
		t.Errorf("sparkline = %q", got)
	}
	if got := string(sparkline(dataset.Empty("a"), 3)); got != "   " {
		t.Errorf("empty sparkline = %q", got)
	}
}
