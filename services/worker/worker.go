package worker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sjsage522/lotteryscraper/helpers"
	"sjsage522/lotteryscraper/internal/export"
	"sjsage522/lotteryscraper/internal/lottery"
	"sjsage522/lotteryscraper/logger"
	"sjsage522/lotteryscraper/services/publisher"
)

// Worker runs one scrape: fetch, parse, export and optionally publish
type Worker struct {
	source      lottery.Source
	publisher   publisher.Publisher
	logger      helpers.LoggerInterface
	csvPath     string
	parquetPath string
}

// NewWorker creates a new worker; pub may be nil to skip publishing
func NewWorker(
	source lottery.Source,
	pub publisher.Publisher,
	logger helpers.LoggerInterface,
	csvPath string,
	parquetPath string,
) *Worker {
	return &Worker{
		source:      source,
		publisher:   pub,
		logger:      logger,
		csvPath:     csvPath,
		parquetPath: parquetPath,
	}
}

// Run scrapes one year and writes both output files. Publishing failures are
// logged and do not fail the run.
func (w *Worker) Run(year int) ([]lottery.DrawRecord, error) {
	runID := uuid.NewString()
	log := logger.ForWorker().WithFields(logger.Fields{
		"run_id": runID,
		"year":   year,
		"source": w.source.GetName(),
	})

	start := time.Now()
	log.Info().Msg("Starting scrape")

	draws, err := w.source.FetchDraws(year)
	if err != nil {
		w.logger.LogError(w.source.GetName(), err)
		return nil, fmt.Errorf("scrape year %d: %w", year, err)
	}

	if err := export.WriteCSV(w.csvPath, draws); err != nil {
		w.logger.LogError("Exporter", err)
		return nil, err
	}
	if err := export.WriteParquet(w.parquetPath, draws); err != nil {
		w.logger.LogError("Exporter", err)
		return nil, err
	}

	published := w.publish(draws)

	log.Info().
		Int("draws", len(draws)).
		Int("published", published).
		Dur("elapsed", time.Since(start)).
		Msg("Scrape completed")

	return draws, nil
}

// publish sends every draw to the publisher keyed by its date and returns how many succeeded
func (w *Worker) publish(draws []lottery.DrawRecord) int {
	if w.publisher == nil {
		return 0
	}

	published := 0
	for _, draw := range draws {
		drawData, err := json.Marshal(draw)
		if err != nil {
			w.logger.LogError("Publisher", err)
			continue
		}

		if err := w.publisher.Publish(draw.Date.Format(export.DateLayout), drawData); err != nil {
			w.logger.LogError("Publisher", err)
			continue
		}
		published++
	}

	if err := w.publisher.TrimStream(); err != nil {
		w.logger.LogError("StreamTrimming", err)
	}

	return published
}
