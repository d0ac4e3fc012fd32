// Package dataset holds the immutable, ordered time series the chart is drawn from.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// LabelLayout is the layout used to turn a timestamp into the label carried by pointer events.
const LabelLayout = "2006-01-02"

var (
	ErrIndexGap      = errors.New("dataset: indices are not contiguous")
	ErrUnordered     = errors.New("dataset: timestamps are not strictly increasing")
	ErrDuplicate     = errors.New("dataset: duplicate label")
	ErrValueCount    = errors.New("dataset: value count does not match series")
	ErrNonFinite     = errors.New("dataset: value is not finite")
	ErrIndexOutRange = errors.New("dataset: index out of range")
)

type DataPoint struct {
	Index     int
	Timestamp time.Time
	Label     string
	Values    []float64
}

// Dataset is safe to share read-only once built.
type Dataset struct {
	series  []string
	points  []DataPoint
	byLabel map[string]int
}

// New validates points and builds the label index. Points are copied.
// An empty Label is filled from the timestamp.
func New(series []string, points []DataPoint) (*Dataset, error) {
	d := &Dataset{
		series:  append([]string(nil), series...),
		points:  make([]DataPoint, len(points)),
		byLabel: make(map[string]int, len(points)),
	}

	for i, p := range points {
		if p.Index != i {
			return nil, fmt.Errorf("%w: point %d has index %d", ErrIndexGap, i, p.Index)
		}
		if i > 0 && !p.Timestamp.After(points[i-1].Timestamp) {
			return nil, fmt.Errorf("%w: point %d (%s)", ErrUnordered, i, p.Timestamp.Format(time.RFC3339))
		}
		if len(p.Values) != len(series) {
			return nil, fmt.Errorf("%w: point %d has %d values, want %d", ErrValueCount, i, len(p.Values), len(series))
		}
		for s, v := range p.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: point %d series %q", ErrNonFinite, i, series[s])
			}
		}

		label := p.Label
		if label == "" {
			label = p.Timestamp.Format(LabelLayout)
		}
		if _, dup := d.byLabel[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, label)
		}
		d.byLabel[label] = i
		d.points[i] = DataPoint{
			Index:     i,
			Timestamp: p.Timestamp,
			Label:     label,
			Values:    append([]float64(nil), p.Values...),
		}
	}
	return d, nil
}

// Empty returns a dataset with no points.
func Empty(series ...string) *Dataset {
	d, _ := New(series, nil)
	return d
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.points)
}

func (d *Dataset) Series() []string {
	return append([]string(nil), d.series...)
}

// At returns the point at index i. The returned Values slice must not be modified.
func (d *Dataset) At(i int) (DataPoint, error) {
	if d == nil || i < 0 || i >= len(d.points) {
		return DataPoint{}, fmt.Errorf("%w: %d", ErrIndexOutRange, i)
	}
	return d.points[i], nil
}

// Label returns the label at i, or "" when i is out of range.
func (d *Dataset) Label(i int) string {
	if d == nil || i < 0 || i >= len(d.points) {
		return ""
	}
	return d.points[i].Label
}

// IndexOf resolves a label to its index by exact match.
func (d *Dataset) IndexOf(label string) (int, bool) {
	if d == nil {
		return 0, false
	}
	i, ok := d.byLabel[label]
	return i, ok
}

// Slice returns points in [left, right], clamped to the dataset. Callers must not modify it.
func (d *Dataset) Slice(left, right int) []DataPoint {
	if d == nil || len(d.points) == 0 {
		return nil
	}
	left = max(left, 0)
	right = min(right, len(d.points)-1)
	if left > right {
		return nil
	}
	return d.points[left : right+1]
}

// ValueRange returns the min and max across all series for points in [left, right].
func (d *Dataset) ValueRange(left, right int) (lo, hi float64, ok bool) {
	for _, p := range d.Slice(left, right) {
		for _, v := range p.Values {
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi, ok
}
