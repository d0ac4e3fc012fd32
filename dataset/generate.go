package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Series produced by Generate, in value order.
var WeatherSeries = []string{"temperature", "humidity", "daylightHours"}

type GenerateOptions struct {
	Start time.Time
	End   time.Time
	Step  time.Duration
	Seed  int64
}

// DefaultGenerateOptions covers 2018-01-01 through 2024-05-31 in weekly steps.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Start: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		Step:  7 * 24 * time.Hour,
		Seed:  1,
	}
}

// Generate builds a synthetic yearly-seasonal weather series. The same options always yield the
// same dataset.
func Generate(opts GenerateOptions) (*Dataset, error) {
	if opts.Step <= 0 {
		return nil, fmt.Errorf("generate: step must be positive, got %s", opts.Step)
	}
	if opts.End.Before(opts.Start) {
		return nil, fmt.Errorf("generate: end %s is before start %s",
			opts.End.Format(LabelLayout), opts.Start.Format(LabelLayout))
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	jitter := func(width float64) float64 { return rng.Float64()*width - width/2 }

	var points []DataPoint
	for ts := opts.Start; !ts.After(opts.End); ts = ts.Add(opts.Step) {
		days := ts.Sub(opts.Start).Hours() / 24
		yearProgress := math.Mod(days, 365) / 365
		phase := 2 * math.Pi * yearProgress

		temperature := 15*math.Sin(phase) + 15 + jitter(2)
		humidity := 20*math.Cos(phase) + 60 + jitter(5)
		daylight := 4*math.Sin(phase) + 12 + jitter(0.5)

		points = append(points, DataPoint{
			Index:     len(points),
			Timestamp: ts,
			Values:    []float64{round2(temperature), round2(humidity), round2(daylight)},
		})
	}
	return New(WeatherSeries, points)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
