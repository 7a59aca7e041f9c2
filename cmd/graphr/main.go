// Package main provides graphr, which renders line charts
// from CSV, JSON or XLSX data files to SVG, PNG or PDF.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/benoitkugler/svgchart/chart"
	"github.com/benoitkugler/svgchart/dataset"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	output     string
	format     string
	configPath string
	logLevel   string
	watch      bool

	width, height float64
	gridX, gridY  int
	tickLength    float64
	background    string
	colors        []string
	points        bool
	smooth        bool
	clip          bool
	xScale        string
	fontSize      float64

	charset string
	sheet   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	defaults := chart.DefaultSettings()

	rootCmd := &cobra.Command{
		Use:   "graphr [flags] input...",
		Short: "Render line charts from data files",
		Long: `graphr plots the series found in CSV, TSV, JSON or XLSX files
on one chart, and writes it as SVG, PNG or PDF.
Every series shares the scale of the first one.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "chart.svg", "Output file path")
	flags.StringVar(&opts.format, "format", "", "Output format: svg, png or pdf (default: from the output extension)")
	flags.StringVar(&opts.configPath, "config", "", "JSON file with the chart settings")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Render again when an input file changes")

	flags.Float64Var(&opts.width, "width", defaults.Width, "Canvas width, in pixels")
	flags.Float64Var(&opts.height, "height", defaults.Height, "Canvas height, in pixels")
	flags.IntVar(&opts.gridX, "grid-x", defaults.Gridlines.X, "Number of vertical grid intervals")
	flags.IntVar(&opts.gridY, "grid-y", defaults.Gridlines.Y, "Number of horizontal grid intervals")
	flags.Float64Var(&opts.tickLength, "tick-length", defaults.TickLength, "Length of the ticks past the plot")
	flags.StringVar(&opts.background, "background", defaults.BackgroundColor, "Color of the plot area")
	flags.StringSliceVar(&opts.colors, "colors", defaults.Colors, "Colors of the series, in order")
	flags.BoolVar(&opts.points, "points", defaults.DrawPoints, "Draw the data points")
	flags.BoolVar(&opts.smooth, "smooth", defaults.SmoothCurve, "Join the points with a smooth curve")
	flags.BoolVar(&opts.clip, "clip", defaults.ClipToPlot, "Skip the points outside of the plot area")
	flags.StringVar(&opts.xScale, "x-scale", defaults.XScale.String(), "x scale divisor: max or range")
	flags.Float64Var(&opts.fontSize, "font-size", 0, "Font size of the labels (default 10)")

	flags.StringVar(&opts.charset, "charset", "", "Text encoding of CSV and JSON inputs (default: UTF-8)")
	flags.StringVar(&opts.sheet, "sheet", "", "XLSX sheet to read (default: the first one)")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	settings, err := buildSettings(cmd, opts)
	if err != nil {
		return err
	}
	settings.Logger = log

	format := opts.format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.output)), ".")
	}
	if _, ok := surfaces[format]; !ok {
		return fmt.Errorf("invalid output format: %q (must be svg, png or pdf)", format)
	}

	r := renderer{
		inputs:   args,
		output:   opts.output,
		format:   format,
		settings: settings,
		dsOpts:   dataset.Options{Charset: opts.charset, Sheet: opts.sheet},
		log:      log,
	}
	if err := r.render(); err != nil {
		if !opts.watch {
			return err
		}
		log.WithError(err).Error("render failed")
	}
	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.watch(ctx)
}

// buildSettings starts from the defaults, or the config file, and
// applies the flags explicitly set.
func buildSettings(cmd *cobra.Command, opts options) (chart.Settings, error) {
	settings := chart.DefaultSettings()
	if opts.configPath != "" {
		data, err := os.ReadFile(opts.configPath)
		if err != nil {
			return settings, fmt.Errorf("failed to read config: %w", err)
		}
		if err := json.Unmarshal(data, &settings); err != nil {
			return settings, fmt.Errorf("invalid config %s: %w", opts.configPath, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		settings.Width = opts.width
	}
	if flags.Changed("height") {
		settings.Height = opts.height
	}
	if flags.Changed("grid-x") {
		settings.Gridlines.X = opts.gridX
	}
	if flags.Changed("grid-y") {
		settings.Gridlines.Y = opts.gridY
	}
	if flags.Changed("tick-length") {
		settings.TickLength = opts.tickLength
	}
	if flags.Changed("background") {
		settings.BackgroundColor = opts.background
	}
	if flags.Changed("colors") {
		settings.Colors = opts.colors
	}
	if flags.Changed("points") {
		settings.DrawPoints = opts.points
	}
	if flags.Changed("smooth") {
		settings.SmoothCurve = opts.smooth
	}
	if flags.Changed("clip") {
		settings.ClipToPlot = opts.clip
	}
	if flags.Changed("x-scale") {
		if err := settings.XScale.UnmarshalText([]byte(opts.xScale)); err != nil {
			return settings, err
		}
	}
	if flags.Changed("font-size") {
		settings.FontSize = opts.fontSize
	}
	return settings, settings.Validate()
}
