package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/modelwatch/driftscan/internal/dataset"
	"github.com/modelwatch/driftscan/internal/drift"
	"github.com/modelwatch/driftscan/internal/driftconfig"
	"github.com/modelwatch/driftscan/internal/reporting"
)

type analyzeOptions struct {
	reference  string
	production string
	window     int
	format     string
	outputPath string
}

func newAnalyzeCommand() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a drift analysis and emit the report",
		Long: `Analyze compares the reference dataset against the most recent window
of production requests.

Data paths, the window size, the feature list, and the score thresholds
come from .driftscan.yaml (found by walking up from the working
directory); flags override file values. The report is written to stdout
unless --output is given. On any failure a structured error document is
written instead — the output is always valid JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.reference, "reference", "r", "", "Reference dataset CSV (default from config)")
	cmd.Flags().StringVarP(&opts.production, "production", "p", "", "Production requests CSV (default from config)")
	cmd.Flags().IntVarP(&opts.window, "window", "w", 0, "Most recent production rows to analyze (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json or summary")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	if opts.format != "json" && opts.format != "summary" {
		return fmt.Errorf("unsupported format %q: must be json or summary", opts.format)
	}

	out := cmd.OutOrStdout()
	if opts.outputPath != "" {
		f, err := os.Create(opts.outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close() //nolint:errcheck
		out = f
	}

	report, err := analyzePipeline(opts)
	if err != nil {
		reporting.WriteError(out, err)
		return &AnalysisFailedError{Message: err.Error()}
	}

	if opts.format == "summary" {
		fmt.Fprint(out, reporting.FormatSummary(report)) //nolint:errcheck
		return nil
	}

	if err := reporting.WriteReport(out, report); err != nil {
		reporting.WriteError(out, err)
		return &AnalysisFailedError{Message: err.Error()}
	}
	return nil
}

// analyzePipeline is the fallible part of the run: it either produces
// the full report or a single error, never a partial result.
func analyzePipeline(opts *analyzeOptions) (*drift.Report, error) {
	cfg, err := driftconfig.Load(".")
	if err != nil {
		return nil, drift.NewError(drift.KindLoad, err)
	}
	applyFlags(cfg, opts)

	ref, err := dataset.LoadTable(cfg.Data.Reference)
	if err != nil {
		return nil, drift.NewError(drift.KindLoad, err)
	}
	slog.Debug("loaded reference dataset", "path", cfg.Data.Reference, "rows", ref.Len())

	prod, err := dataset.LoadTable(cfg.Data.Production)
	if err != nil {
		return nil, drift.NewError(drift.KindLoad, err)
	}
	slog.Debug("loaded production dataset", "path", cfg.Data.Production, "rows", prod.Len())

	return cfg.Analyzer().Run(ref, prod)
}

// applyFlags overlays set flag values onto the file configuration.
func applyFlags(cfg *driftconfig.Config, opts *analyzeOptions) {
	if opts.reference != "" {
		cfg.Data.Reference = opts.reference
	}
	if opts.production != "" {
		cfg.Data.Production = opts.production
	}
	if opts.window > 0 {
		cfg.Data.Window = opts.window
	}
}
