package experiments

import (
	"fmt"
	"sync"
	"time"

	"woodland/experiments/metrics"
	"woodland/game"
	"woodland/setup"

	"github.com/rs/zerolog/log"
)

type SamplingConfig struct {
	Samples int
	Workers int
	Seed    uint64 // 0 seeds every worker from the clock
	Retries int
}

// RunSampling generates cfg.Samples setups for one roster across cfg.Workers
// goroutines, each with its own generator, and aggregates the outcomes.
func RunSampling(catalog *game.Catalog, players []game.Player, cfg SamplingConfig) metrics.Collector {
	if cfg.Samples <= 0 {
		panic("Must specify a positive number of samples")
	}
	workers := max(cfg.Workers, 1)
	collector := metrics.NewCollector(catalog)
	collector.Start()

	task := make(chan any, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		task <- nil
	}
	close(task)

	log.Info().Msgf("sampling %d setups for %d players with %d workers...", cfg.Samples, len(players), workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		options := []setup.Option{}
		if cfg.Seed != 0 {
			options = append(options, setup.WithSeed(cfg.Seed+uint64(i)))
		}
		generator := setup.NewGenerator(catalog, options...)

		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				start := time.Now()
				gs, err := generator.GenerateWithRetry(players, cfg.Retries)
				if err != nil {
					collector.AddFailure(err, start)
					continue
				}
				collector.AddSetup(gs, start)
			}
		}()
	}

	wg.Wait()

	log.Info().Msg("completed sampling")
	return collector
}

// WriteSampling stores the runs and faction frequencies of a sampling run.
func WriteSampling(root string, collector metrics.Collector) (metrics.Summary, string, error) {
	writer, err := metrics.NewWriter(root, "sampling")
	if err != nil {
		return metrics.Summary{}, "", fmt.Errorf("failed to create sampling writer: %w", err)
	}

	summary := collector.Complete()
	if err := writer.WriteRuns(collector.Runs()); err != nil {
		return summary, "", fmt.Errorf("failed to store runs: %w", err)
	}
	if err := writer.WriteFactions(summary.Factions); err != nil {
		return summary, "", fmt.Errorf("failed to store faction counts: %w", err)
	}

	log.Info().Msgf("stored %d runs in %s", summary.Runs, writer.Dir())
	return summary, writer.Dir(), nil
}
