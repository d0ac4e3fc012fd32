// Package config loads siftly-chart's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/andareed/siftly-chart/chart"
	"github.com/andareed/siftly-chart/dataset"
)

const (
	EnvConfigPath = "SIFTLY_CHART_CONFIG"
	EnvZoomFactor = "SIFTLY_CHART_ZOOM_FACTOR"
)

// Config represents the main configuration
type Config struct {
	Chart ChartConfig `toml:"chart"`
	Data  DataConfig  `toml:"data"`
	UI    UIConfig    `toml:"ui"`
}

type ChartConfig struct {
	ZoomFactor  float64 `toml:"zoom_factor"`  // share of the visible width per zoom step
	InvertWheel bool    `toml:"invert_wheel"` // wheel down zooms in when true
	XSteps      int     `toml:"x_steps"`      // columns between X axis labels
	YSteps      int     `toml:"y_steps"`      // rows between Y axis labels
}

// DataConfig drives the synthetic dataset used when no file is given.
type DataConfig struct {
	Start string   `toml:"start"` // 2006-01-02
	End   string   `toml:"end"`
	Step  Duration `toml:"step"`
	Seed  int64    `toml:"seed"`
}

type UIConfig struct {
	AltScreen    bool              `toml:"alt_screen"`
	Mouse        bool              `toml:"mouse"`
	SeriesColors map[string]string `toml:"series_colors"`
	ExportDir    string            `toml:"export_dir"`
}

// Duration lets TOML carry values like "168h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	gen := dataset.DefaultGenerateOptions()
	return &Config{
		Chart: ChartConfig{
			ZoomFactor: chart.DefaultZoomFactor,
			XSteps:     12,
			YSteps:     3,
		},
		Data: DataConfig{
			Start: gen.Start.Format(dataset.LabelLayout),
			End:   gen.End.Format(dataset.LabelLayout),
			Step:  Duration{gen.Step},
			Seed:  gen.Seed,
		},
		UI: UIConfig{
			AltScreen: true,
			Mouse:     true,
			SeriesColors: map[string]string{
				"temperature":   "#e76f51",
				"humidity":      "#2a9d8f",
				"daylightHours": "#e9c46a",
			},
		},
	}
}

// DefaultPath returns the config file location, honouring SIFTLY_CHART_CONFIG and XDG_CONFIG_HOME.
func DefaultPath() string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return ExpandHome(env)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "siftly-chart", "config.toml")
	}
	home, err := homedir.Dir()
	if err != nil || home == "" {
		home = os.TempDir()
	}
	return filepath.Join(home, ".config", "siftly-chart", "config.toml")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// Load reads path (or DefaultPath when empty) over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	path = ExpandHome(path)

	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if raw := os.Getenv(EnvZoomFactor); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvZoomFactor, err)
		}
		cfg.Chart.ZoomFactor = f
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Chart.ZoomFactor <= 0 || c.Chart.ZoomFactor >= 1 {
		return fmt.Errorf("chart.zoom_factor must be in (0, 1), got %g", c.Chart.ZoomFactor)
	}
	if c.Chart.XSteps < 0 || c.Chart.YSteps < 0 {
		return fmt.Errorf("chart.x_steps and chart.y_steps must not be negative")
	}
	if _, err := c.GenerateOptions(); err != nil {
		return err
	}
	return nil
}

// GenerateOptions converts the [data] section for dataset.Generate.
func (c *Config) GenerateOptions() (dataset.GenerateOptions, error) {
	start, err := time.Parse(dataset.LabelLayout, c.Data.Start)
	if err != nil {
		return dataset.GenerateOptions{}, fmt.Errorf("data.start: %w", err)
	}
	end, err := time.Parse(dataset.LabelLayout, c.Data.End)
	if err != nil {
		return dataset.GenerateOptions{}, fmt.Errorf("data.end: %w", err)
	}
	if c.Data.Step.Duration <= 0 {
		return dataset.GenerateOptions{}, fmt.Errorf("data.step must be positive")
	}
	return dataset.GenerateOptions{
		Start: start,
		End:   end,
		Step:  c.Data.Step.Duration,
		Seed:  c.Data.Seed,
	}, nil
}

// SeriesColor returns the configured colour for a series, or fallback.
func (c *Config) SeriesColor(series, fallback string) string {
	if col, ok := c.UI.SeriesColors[series]; ok && col != "" {
		return col
	}
	return fallback
}
