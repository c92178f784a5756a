package main

import (
	"fmt"
	"log/slog"

	"roomgen/internal/config"
	"roomgen/internal/render"
	"roomgen/internal/telemetry"
	"roomgen/pkg/core"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	file        string
	overrides   []string
	seed        int64
	steps       int
	metricsFile string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [generator]",
		Short: "Generate a layout and print it as text",
		Long: "Generate a layout and print it as text ('#' blocked, '.' open).\n" +
			"With --steps N the grid is refined N more times and every frame is printed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := telemetry.NewLogger(cmd.ErrOrStderr(), root.logLevel, root.logFormat)
			if err != nil {
				return err
			}
			req := config.Request{File: opts.file, Overrides: opts.overrides}
			if len(args) == 1 {
				req.Generator = args[0]
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &opts.seed
			}
			return runGenerate(cmd, logger, req, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.file, "config", "", "YAML settings file")
	f.StringArrayVar(&opts.overrides, "set", nil, "parameter override key=value (repeatable)")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (overrides the config)")
	f.IntVar(&opts.steps, "steps", 0, "extra refinement steps to print after the first grid")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	return cmd
}

func runGenerate(cmd *cobra.Command, logger *slog.Logger, req config.Request, opts *generateOptions) error {
	if opts.steps < 0 {
		return fmt.Errorf("--steps must be >= 0, got %d", opts.steps)
	}
	name, params, err := config.Resolve(req)
	if err != nil {
		return err
	}
	logger.Debug("resolved settings", "generator", name, "keys", config.Keys(params))
	gen, err := core.New(name, params)
	if err != nil {
		return err
	}

	var metrics *telemetry.Metrics
	if opts.metricsFile != "" {
		metrics = telemetry.NewMetrics()
	}
	run := telemetry.Instrument(gen, logger, metrics)
	out := cmd.OutOrStdout()

	grid := run.GenerateGrid()
	if err := render.WriteFrame(out, name, grid); err != nil {
		return err
	}
	for i := 1; i <= opts.steps; i++ {
		grid = run.NextIteration()
		if err := render.WriteFrame(out, fmt.Sprintf("%s step %d", name, i), grid); err != nil {
			return err
		}
	}

	stats := run.Stats()
	logger.Info("generation finished",
		"run_id", run.RunID(),
		"generator", name,
		"width", grid.W,
		"height", grid.H,
		"open_fraction", grid.OpenFraction(),
		"iterations", stats.Iterations,
	)

	if metrics != nil {
		if err := metrics.WriteTextfile(opts.metricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Debug("metrics written", "path", opts.metricsFile)
	}
	return nil
}
