package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/andareed/siftly-chart/chart"
	"github.com/andareed/siftly-chart/dataset"
)

// --- Wire format ---

const snapshotVersion = 1

type pointDTO struct {
	Timestamp time.Time `json:"ts"`
	Label     string    `json:"label"`
	Values    []float64 `json:"values"`
}

type viewportDTO struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

type snapshotDTO struct {
	Version  int          `json:"version"`
	Series   []string     `json:"series"`
	Points   []pointDTO   `json:"points"`
	Viewport *viewportDTO `json:"viewport,omitempty"`
	Source   string       `json:"source,omitempty"`
}

// Snapshot is a decoded snapshot file.
type Snapshot struct {
	Data     *dataset.Dataset
	Viewport *chart.Viewport
	Source   string
}

func isCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}

// --- Public API ---

// ExportVisible writes the points inside the current viewport to a CSV file.
func ExportVisible(m *model, path string) error {
	v, ok := m.data.state.Viewport()
	if !ok {
		return fmt.Errorf("no data to export")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	if err := dataset.WriteCSV(f, m.data.state.Dataset(), v.Left, v.Right); err != nil {
		return err
	}
	return f.Close()
}

// SaveSnapshot writes the dataset and current viewport as JSON, zstd-compressed when path ends in .zst.
func SaveSnapshot(m *model, path string) error {
	d := m.data.state.Dataset()
	dto := snapshotDTO{
		Version: snapshotVersion,
		Series:  d.Series(),
		Points:  make([]pointDTO, 0, d.Len()),
		Source:  m.InitialPath,
	}
	for _, p := range d.Slice(0, d.Len()-1) {
		dto.Points = append(dto.Points, pointDTO{Timestamp: p.Timestamp, Label: p.Label, Values: p.Values})
	}
	if v, ok := m.data.state.Viewport(); ok {
		dto.Viewport = &viewportDTO{Left: v.Left, Right: v.Right}
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	if isCompressed(path) {
		if data, err = compress(data); err != nil {
			return fmt.Errorf("compress snapshot: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadSnapshot reads a file written by SaveSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isCompressed(path) {
		if data, err = decompress(data); err != nil {
			return nil, fmt.Errorf("decompress snapshot: %w", err)
		}
	}

	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	if dto.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported (want %d)", dto.Version, snapshotVersion)
	}

	points := make([]dataset.DataPoint, len(dto.Points))
	for i, p := range dto.Points {
		points[i] = dataset.DataPoint{Index: i, Timestamp: p.Timestamp, Label: p.Label, Values: p.Values}
	}
	d, err := dataset.New(dto.Series, points)
	if err != nil {
		return nil, fmt.Errorf("snapshot data: %w", err)
	}

	snap := &Snapshot{Data: d, Source: dto.Source}
	if dto.Viewport != nil {
		snap.Viewport = &chart.Viewport{Left: dto.Viewport.Left, Right: dto.Viewport.Right}
	}
	return snap, nil
}

// restoreViewport applies a saved viewport through the overview bridge so it gets the same checks
// as any other overview report. Invalid ranges leave the full view.
func (m *model) restoreViewport(v *chart.Viewport) bool {
	if v == nil {
		return false
	}
	return m.data.bridge.OverviewChanged(chart.Range(v.Left, v.Right))
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}
