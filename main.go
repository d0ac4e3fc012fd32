package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andareed/siftly-chart/config"
	"github.com/andareed/siftly-chart/dataset"
	"github.com/andareed/siftly-chart/logging"
)

// Version is set with -ldflags "-X main.Version=...".
var Version = "dev"

type rootOptions struct {
	debugLog   string
	configPath string
	seed       int64
	noColor    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sfchart [file.csv|snapshot.json|snapshot.json.zst]",
		Short: "Zoomable time-series chart for the terminal.",
		Long: `sfchart draws a time series with drag-to-zoom, wheel zoom around the pointer and an
overview strip. With no file it shows a synthetic weather dataset.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.debugLog, "debug", "", "Write debug logs to file")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Seed for the synthetic dataset (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colour output")

	addReplay(cmd, opts)
	addInfo(cmd, opts)
	addGenerate(cmd, opts)
	return cmd
}

// setup applies the persistent flags shared by every command.
func setup(cmd *cobra.Command, opts *rootOptions) (*config.Config, func(), error) {
	cleanup, err := logging.SetupLogging(opts.debugLog)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Data.Seed = opts.seed
	}
	if opts.noColor || os.Getenv("NO_COLOR") != "" {
		usePlainColors()
	}
	return cfg, cleanup, nil
}

func runUI(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, cleanup, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Println("siftly-chart: Started")

	inputPath := ""
	if len(args) > 0 {
		inputPath = config.ExpandHome(args[0])
	}

	m, err := loadModelAuto(inputPath, cfg)
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", inputPath, err)
	}

	progOpts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		logging.Errorf("tea program error: %v", err)
		return err
	}
	return nil
}

func loadModelAuto(path string, cfg *config.Config) (*model, error) {
	if path == "" {
		d, err := loadDataset("", cfg)
		if err != nil {
			return nil, err
		}
		return newModel(d, cfg), nil
	}

	if isSnapshotPath(path) {
		snap, err := LoadSnapshot(path)
		if err != nil {
			return nil, err
		}
		m := newModel(snap.Data, cfg)
		m.InitialPath = path
		if snap.Viewport != nil && !m.restoreViewport(snap.Viewport) {
			logging.Warnf("snapshot viewport %s not applied", *snap.Viewport)
		}
		return m, nil
	}

	d, err := loadDataset(path, cfg)
	if err != nil {
		return nil, err
	}
	m := newModel(d, cfg)
	m.InitialPath = path
	return m, nil
}

func isSnapshotPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".json") || strings.HasSuffix(lower, ".json.zst")
}

// loadDataset reads a CSV or snapshot file, or generates the synthetic dataset when path is empty.
func loadDataset(path string, cfg *config.Config) (*dataset.Dataset, error) {
	if path == "" {
		gen, err := cfg.GenerateOptions()
		if err != nil {
			return nil, err
		}
		return dataset.Generate(gen)
	}
	if isSnapshotPath(path) {
		snap, err := LoadSnapshot(path)
		if err != nil {
			return nil, err
		}
		return snap.Data, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" {
		return nil, fmt.Errorf("unsupported file extension %q (want .csv, .json or .json.zst)", ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()
	return dataset.ReadCSV(f)
}
