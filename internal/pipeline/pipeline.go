// Package pipeline wires the harvest stages together: a bounded worker
// pool runs fetch, extract, and normalize per source endpoint and feeds a
// single-writer aggregator. Per-source failures are contained inside the
// pool; the pipeline always runs to completion with whatever accumulated.
package pipeline

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ethodata/datascout/internal/aggregator"
	"github.com/ethodata/datascout/internal/domain"
	"github.com/ethodata/datascout/internal/extractor"
	"github.com/ethodata/datascout/internal/logger"
	"github.com/ethodata/datascout/internal/normalizer"
	"github.com/ethodata/datascout/internal/sources"
)

// defaultWorkerCount bounds concurrent fetches. Sequential execution
// (one worker) is a conforming configuration.
const defaultWorkerCount = 2

// Fetcher retrieves raw content for one endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint domain.SourceEndpoint) domain.RawDocument
}

// Config holds pipeline configuration.
type Config struct {
	// WorkerCount is the number of concurrent fetch workers
	WorkerCount int `mapstructure:"worker_count" yaml:"worker_count"`
}

// WithDefaults returns a copy of the config with default values applied
// for zero-value fields.
func (c Config) WithDefaults() Config {
	if c.WorkerCount <= 0 {
		c.WorkerCount = defaultWorkerCount
	}
	return c
}

// Summary describes one completed run.
type Summary struct {
	// RunID uniquely identifies the run in logs
	RunID string
	// SourcesAttempted is the number of endpoints visited
	SourcesAttempted int
	// SourcesFailed is the number of endpoints whose fetch failed
	SourcesFailed int
	// RecordsCollected is the number of deduplicated records accumulated
	RecordsCollected int
}

// Pipeline runs the full harvest over a source registry.
type Pipeline struct {
	registry   sources.Interface
	fetcher    Fetcher
	extractor  extractor.Extractor
	normalizer *normalizer.Normalizer
	log        logger.Interface
	cfg        Config
}

// New creates a pipeline with the given stages.
func New(
	registry sources.Interface,
	fetch Fetcher,
	extract extractor.Extractor,
	norm *normalizer.Normalizer,
	log logger.Interface,
	cfg Config,
) *Pipeline {
	return &Pipeline{
		registry:   registry,
		fetcher:    fetch,
		extractor:  extract,
		normalizer: norm,
		log:        log.WithComponent("pipeline"),
		cfg:        cfg.WithDefaults(),
	}
}

// Run visits every registered endpoint and returns the finalized,
// deduplicated result set with a run summary. The run terminates even when
// every source fails; cancellation stops new fetches and finalizes with
// whatever has accumulated.
func (p *Pipeline) Run(ctx context.Context) (domain.ResultSet, Summary) {
	runID := uuid.NewString()
	log := p.log.With("run_id", runID)

	endpoints := p.registry.Endpoints()
	log.Info("starting harvest",
		"sources", len(endpoints),
		"workers", p.cfg.WorkerCount,
	)

	agg := aggregator.New()
	jobs := make(chan domain.SourceEndpoint)

	var wg sync.WaitGroup
	var failedMu sync.Mutex
	failed := 0

	for i := range p.cfg.WorkerCount {
		wg.Add(1)

		go func(workerID int) {
			defer wg.Done()

			for endpoint := range jobs {
				if !p.harvestSource(ctx, log, workerID, endpoint, agg) {
					failedMu.Lock()
					failed++
					failedMu.Unlock()
				}
			}
		}(i)
	}

feed:
	for _, endpoint := range endpoints {
		select {
		case <-ctx.Done():
			log.Warn("run cancelled, finalizing with accumulated records")
			break feed
		case jobs <- endpoint:
		}
	}
	close(jobs)

	wg.Wait()

	results := agg.Finalize()
	summary := Summary{
		RunID:            runID,
		SourcesAttempted: len(endpoints),
		SourcesFailed:    failed,
		RecordsCollected: results.Len(),
	}

	log.Info("harvest complete",
		"sources_attempted", summary.SourcesAttempted,
		"sources_failed", summary.SourcesFailed,
		"records", summary.RecordsCollected,
	)

	return results, summary
}

// harvestSource runs fetch, extract, normalize, and aggregate for one
// endpoint. Returns false when the fetch failed.
func (p *Pipeline) harvestSource(
	ctx context.Context,
	log logger.Interface,
	workerID int,
	endpoint domain.SourceEndpoint,
	agg *aggregator.Aggregator,
) bool {
	doc := p.fetcher.Fetch(ctx, endpoint)
	if doc.Failed {
		log.Error("source fetch failed",
			"worker_id", workerID,
			"source", endpoint.Name,
			"url", endpoint.URL,
			"error", doc.Error,
		)
		return false
	}

	fragments := p.extractor.Extract(doc)
	if len(fragments) == 0 {
		log.Warn("no candidate fragments found",
			"worker_id", workerID,
			"source", endpoint.Name,
		)
		return true
	}

	kept := 0
	for _, fragment := range fragments {
		record := p.normalizer.Normalize(fragment)
		if agg.Add(record) {
			kept++
		}
	}

	log.Info("source harvested",
		"worker_id", workerID,
		"source", endpoint.Name,
		"fragments", len(fragments),
		"records_kept", kept,
	)

	return true
}
