package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

var timeLayouts = []string{LabelLayout, time.RFC3339, "2006-01-02 15:04:05"}

// ReadCSV reads a header row "date,<series...>" followed by one row per point.
// Rows must already be in time order; the dataset is not sorted here.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV has no header row")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("CSV header needs a time column and at least one series, got %d columns", len(header))
	}
	series := make([]string, 0, len(header)-1)
	for _, name := range header[1:] {
		series = append(series, strings.TrimSpace(name))
	}

	points := make([]DataPoint, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d: got %d columns, want %d", line, len(rec), len(header))
		}
		ts, err := parseTime(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		values := make([]float64, len(series))
		for s, raw := range rec[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %q: %w", line, series[s], err)
			}
			values[s] = v
		}
		points = append(points, DataPoint{
			Index:     len(points),
			Timestamp: ts,
			Label:     labelFor(rec[0], ts),
			Values:    values,
		})
	}
	return New(series, points)
}

// WriteCSV writes points in [left, right] in the format ReadCSV accepts.
func WriteCSV(w io.Writer, d *Dataset, left, right int) error {
	return WriteDelimited(w, d, left, right, ',')
}

// WriteDelimited is WriteCSV with a custom field separator, e.g. '\t' for pasting into a spreadsheet.
func WriteDelimited(w io.Writer, d *Dataset, left, right int, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	header := append([]string{"date"}, d.Series()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range d.Slice(left, right) {
		rec := make([]string, 0, len(p.Values)+1)
		rec = append(rec, p.Label)
		for _, v := range p.Values {
			rec = append(rec, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", p.Index, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", raw)
}

// Day-resolution rows keep their short label; finer timestamps keep the raw text so labels stay unique.
func labelFor(raw string, ts time.Time) string {
	if ts.Equal(ts.Truncate(24 * time.Hour)) {
		return ts.Format(LabelLayout)
	}
	return strings.TrimSpace(raw)
}
