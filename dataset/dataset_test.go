package dataset

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name   string
		points []DataPoint
		want   error
	}{
		{
			name:   "index gap",
			points: []DataPoint{{Index: 0, Timestamp: day(0), Values: []float64{1}}, {Index: 2, Timestamp: day(1), Values: []float64{1}}},
			want:   ErrIndexGap,
		},
		{
			name:   "equal timestamps",
			points: []DataPoint{{Index: 0, Timestamp: day(0), Values: []float64{1}}, {Index: 1, Timestamp: day(0), Values: []float64{1}}},
			want:   ErrUnordered,
		},
		{
			name:   "value count",
			points: []DataPoint{{Index: 0, Timestamp: day(0), Values: []float64{1, 2}}},
			want:   ErrValueCount,
		},
		{
			name:   "duplicate label",
			points: []DataPoint{{Index: 0, Timestamp: day(0), Label: "x", Values: []float64{1}}, {Index: 1, Timestamp: day(1), Label: "x", Values: []float64{1}}},
			want:   ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]string{"v"}, tt.points)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIndexOf(t *testing.T) {
	d, err := New([]string{"v"}, []DataPoint{
		{Index: 0, Timestamp: day(0), Values: []float64{1}},
		{Index: 1, Timestamp: day(1), Values: []float64{2}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if i, ok := d.IndexOf("2020-01-02"); !ok || i != 1 {
		t.Errorf("IndexOf(2020-01-02) = %d, %v; want 1, true", i, ok)
	}
	if _, ok := d.IndexOf("1999-01-01"); ok {
		t.Error("IndexOf of unknown label should fail")
	}
	if d.Label(5) != "" {
		t.Errorf("Label(5) = %q, want empty", d.Label(5))
	}
}

func TestEmptyDataset(t *testing.T) {
	d := Empty("v")
	if d.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", d.Len())
	}
	if got := d.Slice(0, 10); got != nil {
		t.Errorf("Slice on empty dataset = %v, want nil", got)
	}
	if _, _, ok := d.ValueRange(0, 10); ok {
		t.Error("ValueRange on empty dataset should report !ok")
	}
	var nilSet *Dataset
	if nilSet.Len() != 0 {
		t.Error("nil dataset should have length 0")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	opts := DefaultGenerateOptions()
	a, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _ := Generate(opts)

	// 2018-01-01 .. 2024-05-31 weekly
	if a.Len() != 335 {
		t.Fatalf("Len() = %d, want 335", a.Len())
	}
	for i := 0; i < a.Len(); i++ {
		pa, _ := a.At(i)
		pb, _ := b.At(i)
		if pa.Label != pb.Label || pa.Values[0] != pb.Values[0] {
			t.Fatalf("point %d differs between runs", i)
		}
	}
	first, _ := a.At(0)
	if first.Label != "2018-01-01" {
		t.Errorf("first label = %q", first.Label)
	}
}

func TestGenerateRejectsBadStep(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Step = 0
	if _, err := Generate(opts); err == nil {
		t.Fatal("expected error for zero step")
	}
}

func TestReadCSV(t *testing.T) {
	in := "date,temp,hum\n2020-01-01,1.5,40\n2020-01-08,2,41.25\n"
	d, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	if got := d.Series(); len(got) != 2 || got[1] != "hum" {
		t.Errorf("Series() = %v", got)
	}
	p, _ := d.At(1)
	if p.Label != "2020-01-08" || p.Values[1] != 41.25 {
		t.Errorf("At(1) = %+v", p)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"no series":      "date\n2020-01-01\n",
		"bad time":       "date,v\nyesterday,1\n",
		"bad value":      "date,v\n2020-01-01,abc\n",
		"out of order":   "date,v\n2020-01-02,1\n2020-01-01,2\n",
		"ragged columns": "date,v\n2020-01-01,1,2\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(in)); err == nil {
				t.Fatalf("expected error for %q", in)
			}
		})
	}
}

func TestWriteCSVRange(t *testing.T) {
	d, _ := Generate(DefaultGenerateOptions())

	var buf bytes.Buffer
	if err := WriteCSV(&buf, d, 10, 12); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows:\n%s", len(lines), buf.String())
	}

	back, err := ReadCSV(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadCSV of exported range: %v", err)
	}
	if back.Len() != 3 || back.Label(0) != d.Label(10) {
		t.Errorf("exported range = %d points starting %q, want 3 starting %q", back.Len(), back.Label(0), d.Label(10))
	}
}
