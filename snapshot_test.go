package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andareed/siftly-chart/chart"
	"github.com/andareed/siftly-chart/config"
	"github.com/andareed/siftly-chart/dataset"
)

func TestSnapshotRoundTrip(t *testing.T) {
	for _, name := range []string{"snap.json", "snap.json.zst"} {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t)
			m.data.bridge.OverviewChanged(chart.Range(30, 90))
			path := filepath.Join(t.TempDir(), name)

			if err := SaveSnapshot(m, path); err != nil {
				t.Fatalf("SaveSnapshot: %v", err)
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if compressed := !bytes.HasPrefix(raw, []byte("{")); compressed != isCompressed(path) {
				t.Errorf("compressed=%v for %s", compressed, name)
			}

			loaded, err := loadModelAuto(path, config.Default())
			if err != nil {
				t.Fatalf("loadModelAuto: %v", err)
			}
			if got := viewport(t, loaded); got != (chart.Viewport{Left: 30, Right: 90}) {
				t.Errorf("restored viewport = %s", got)
			}
			if loaded.data.state.Len() != m.data.state.Len() {
				t.Errorf("restored %d points, want %d", loaded.data.state.Len(), m.data.state.Len())
			}
			if loaded.data.state.Dataset().Label(30) != m.data.state.Dataset().Label(30) {
				t.Error("labels differ after round trip")
			}
		})
	}
}

func TestLoadSnapshotRejectsBadData(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"version": `{"version": 99, "series": [], "points": []}`,
		"json":    `{"version": 1,`,
		"order": `{"version": 1, "series": ["v"], "points": [
			{"ts": "2020-01-02T00:00:00Z", "values": [1]},
			{"ts": "2020-01-01T00:00:00Z", "values": [2]}]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSnapshot(path); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestSnapshotWithInvalidViewportFallsBackToFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-vp.json")
	body := `{"version": 1, "series": ["v"], "points": [
		{"ts": "2020-01-01T00:00:00Z", "label": "a", "values": [1]},
		{"ts": "2020-01-02T00:00:00Z", "label": "b", "values": [2]},
		{"ts": "2020-01-03T00:00:00Z", "label": "c", "values": [3]}],
		"viewport": {"left": 2, "right": 1}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	m, err := loadModelAuto(path, config.Default())
	if err != nil {
		t.Fatalf("loadModelAuto: %v", err)
	}
	if got := viewport(t, m); got != chart.FullViewport(3) {
		t.Errorf("viewport = %s, want full", got)
	}
}

func TestExportVisible(t *testing.T) {
	m := newTestModel(t)
	m.data.bridge.OverviewChanged(chart.Range(10, 19))
	path := filepath.Join(t.TempDir(), "range.csv")

	if err := ExportVisible(m, path); err != nil {
		t.Fatalf("ExportVisible: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	d, err := dataset.ReadCSV(f)
	if err != nil {
		t.Fatalf("exported CSV does not read back: %v", err)
	}
	if d.Len() != 10 || d.Label(0) != m.data.state.Dataset().Label(10) {
		t.Errorf("exported %d points starting %s", d.Len(), d.Label(0))
	}
}

func TestLoadModelAutoRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := loadModelAuto(path, config.Default())
	if err == nil || !strings.Contains(err.Error(), "unsupported file extension") {
		t.Fatalf("err = %v", err)
	}
}

func TestDefaultNames(t *testing.T) {
	m := newTestModel(t)
	m.InitialPath = "/data/weather.json.zst"
	if got := defaultSaveName(m); got != "weather.json" {
		t.Errorf("defaultSaveName = %q", got)
	}
	m.data.bridge.OverviewChanged(chart.Range(0, 1))
	d := m.data.state.Dataset()
	want := "weather_" + d.Label(0) + "_" + d.Label(1) + ".csv"
	if got := defaultExportName(m); got != want {
		t.Errorf("defaultExportName = %q, want %q", got, want)
	}
}
