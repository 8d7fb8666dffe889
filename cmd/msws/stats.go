package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/coder/quartz"

	"github.com/lox/msws/internal/sampler"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true).
			Padding(0, 1)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true).
			Padding(0, 1)
)

// StatsCmd samples many derived streams in parallel and reports on each.
type StatsCmd struct {
	Streams  int    `help:"Number of independent streams (overrides config)"`
	Samples  int    `help:"Outputs drawn per stream (overrides config)"`
	Workers  int    `help:"Concurrent streams, 0 for one per CPU (overrides config)"`
	BaseSeed uint64 `name:"base-seed" help:"Stream i derives its seed from base-seed + i (defaults to the configured seed)"`

	Clock quartz.Clock `kong:"-"`
}

func (cmd *StatsCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Streams != 0 {
		cfg.Stats.Streams = cmd.Streams
	}
	if cmd.Samples != 0 {
		cfg.Stats.Samples = cmd.Samples
	}
	if cmd.Workers != 0 {
		cfg.Stats.Workers = cmd.Workers
	}
	base := cfg.Generator.Seed
	if cmd.BaseSeed != 0 {
		base = cmd.BaseSeed
	}

	logger, err := g.finish(cfg)
	if err != nil {
		return err
	}

	ctx, stop := setupSignalHandler(logger)
	defer stop()

	clock := cmd.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	start := clock.Now()
	results, err := sampler.Run(ctx, sampler.Options{
		Streams:  cfg.Stats.Streams,
		Samples:  cfg.Stats.Samples,
		Workers:  cfg.Stats.Workers,
		BaseSeed: base,
		Clock:    clock,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	logger.Info("Sampling complete",
		"streams", len(results),
		"samples", cfg.Stats.Samples,
		"elapsed", clock.Since(start))

	fmt.Fprintln(g.stdout(), renderReport(results))

	if failed := sampler.Failures(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d streams failed: stream %d: %w",
			len(failed), len(results), failed[0].Stream, failed[0].Summary.Validate())
	}
	return nil
}

const statusCol = 6

func renderReport(results []sampler.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "ok"
		if err := r.Summary.Validate(); err != nil {
			status = err.Error()
		} else if !r.Summary.Uniform() {
			status = "skewed"
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Stream),
			fmt.Sprintf("0x%016x", r.Seed),
			fmt.Sprintf("%.5f", r.Summary.Mean),
			fmt.Sprintf("%.5f", r.Summary.StdDev),
			fmt.Sprintf("%.2f", r.Summary.ChiSquare),
			strconv.Itoa(r.Summary.LongestRun),
			status,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("stream", "seed", "mean", "stddev", "chi²", "run", "status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == statusCol && row >= 0 && row < len(rows) && rows[row][statusCol] == "ok":
				return passStyle
			case col == statusCol:
				return failStyle
			}
			return cellStyle
		}).
		String()
}
