package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/andareed/siftly-chart/config"
	"github.com/andareed/siftly-chart/dataset"
	"github.com/andareed/siftly-chart/replay"
)

var (
	bold    = color.New(color.Bold).SprintFunc()
	changed = color.New(color.FgGreen).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

func colorOutput(opts *rootOptions) {
	if opts.noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func addReplay(topLevel *cobra.Command, opts *rootOptions) {
	var asJSON bool
	var dataPath string

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Run a scripted gesture session without a terminal UI",
		Example: `
sfchart replay pinch.yaml
sfchart replay --data weather.csv --json drag.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()
			colorOutput(opts)

			script, err := replay.ParseFile(config.ExpandHome(args[0]))
			if err != nil {
				return err
			}
			if script.ZoomFactor == 0 {
				script.ZoomFactor = cfg.Chart.ZoomFactor
			}
			d, err := loadDataset(config.ExpandHome(dataPath), cfg)
			if err != nil {
				return err
			}
			results, err := replay.Run(script, d)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), replayTable(results))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	cmd.Flags().StringVar(&dataPath, "data", "", "Dataset file (default: synthetic)")

	topLevel.AddCommand(cmd)
}

func replayTable(results []replay.Result) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Step"), bold("Kind"), bold("Changed"), bold("Viewport"), bold("Range"), bold("Selection"), bold("Pinch"))
	for _, r := range results {
		vp, rng := dim("-"), dim("-")
		if r.Viewport != nil {
			vp = r.Viewport.String()
			rng = r.FirstLabel + " - " + r.LastLabel
		}
		sel := dim("-")
		if r.Selection != nil {
			sel = strconv.Itoa(r.Selection.Anchor)
			if r.Selection.HasCursor {
				sel += ".." + strconv.Itoa(r.Selection.Cursor)
			}
		}
		ch := "no"
		if r.Changed {
			ch = changed("yes")
		}
		tbl.AddRow(r.Step, r.Kind, ch, vp, rng, sel, r.PinchActive)
	}
	return tbl
}

func addInfo(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Summarise a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()
			colorOutput(opts)

			path := ""
			if len(args) > 0 {
				path = config.ExpandHome(args[0])
			}
			d, err := loadDataset(path, cfg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), infoTable(d))
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func infoTable(d *dataset.Dataset) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Points:"), d.Len())
	if d.Len() == 0 {
		return tbl
	}
	tbl.AddRow(bold("Range:"), d.Label(0)+" - "+d.Label(d.Len()-1))
	tbl.AddRow("")
	tbl.AddRow(bold("Series"), bold("Min"), bold("Max"))
	points := d.Slice(0, d.Len()-1)
	for si, name := range d.Series() {
		lo, hi := points[0].Values[si], points[0].Values[si]
		for _, p := range points {
			lo = min(lo, p.Values[si])
			hi = max(hi, p.Values[si])
		}
		tbl.AddRow(name, strconv.FormatFloat(lo, 'f', 2, 64), strconv.FormatFloat(hi, 'f', 2, 64))
	}
	return tbl
}

func addGenerate(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "generate <out.csv>",
		Short: "Write the synthetic weather dataset to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := loadDataset("", cfg)
			if err != nil {
				return err
			}
			path := config.ExpandHome(args[0])
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			defer f.Close()
			if err := dataset.WriteCSV(f, d, 0, d.Len()-1); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d points to %s\n", d.Len(), path)
			return f.Close()
		},
	}
	topLevel.AddCommand(cmd)
}
