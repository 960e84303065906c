// Package harvest implements the command that runs the full pipeline:
// fetch every registered source, extract and normalize fragments, and
// export the deduplicated table. Per-source failures are diagnostics only;
// the command fails solely on an export write failure.
package harvest

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ethodata/datascout/internal/config"
	"github.com/ethodata/datascout/internal/domain"
	"github.com/ethodata/datascout/internal/exporter"
	"github.com/ethodata/datascout/internal/extractor"
	"github.com/ethodata/datascout/internal/fetcher"
	"github.com/ethodata/datascout/internal/logger"
	"github.com/ethodata/datascout/internal/normalizer"
	"github.com/ethodata/datascout/internal/pipeline"
	"github.com/ethodata/datascout/internal/sources"
)

// Command creates the harvest command.
func Command(cfgFile *string, debug *bool) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Fetch all sources and export the dataset metadata table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), *cfgFile, *debug, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "export format: csv, json, or both (default from config)")

	return cmd
}

// run loads configuration, builds the pipeline, and executes one harvest.
func run(ctx context.Context, cfgFile string, debug bool, format string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if format != "" {
		cfg.Export.Format = format
		if validateErr := cfg.Validate(); validateErr != nil {
			return validateErr
		}
	}
	if debug {
		cfg.Logging.Level = logger.DebugLevel
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	registry, err := sources.New(cfg.Sources...)
	if err != nil {
		return fmt.Errorf("build source registry: %w", err)
	}

	p := pipeline.New(
		registry,
		fetcher.New(cfg.Fetch, log),
		extractor.NewHeadingExtractor(),
		normalizer.New(normalizer.StandardDefaults()),
		log,
		cfg.Pipeline,
	)

	// Interrupt stops new fetches; the run finalizes and exports whatever
	// accumulated.
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, summary := p.Run(runCtx)

	if exportErr := export(cfg, results); exportErr != nil {
		log.Error("export failed", "error", exportErr.Error())
		return exportErr
	}

	log.Info("run finished",
		"run_id", summary.RunID,
		"sources_attempted", summary.SourcesAttempted,
		"records_exported", summary.RecordsCollected,
	)

	return nil
}

// export writes the result set in the configured format(s).
func export(cfg *config.Config, results domain.ResultSet) error {
	if cfg.Export.Format == config.FormatCSV || cfg.Export.Format == config.FormatBoth {
		if err := exporter.SaveCSV(cfg.Export.CSVPath, results); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	}

	if cfg.Export.Format == config.FormatJSON || cfg.Export.Format == config.FormatBoth {
		if err := exporter.SaveJSON(cfg.Export.JSONPath, results); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
	}

	return nil
}
