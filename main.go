package main

import (
	"context"
	"time"

	"sjsage522/lotteryscraper/config"
	"sjsage522/lotteryscraper/helpers"
	"sjsage522/lotteryscraper/internal"
	"sjsage522/lotteryscraper/internal/lottery"
	"sjsage522/lotteryscraper/logger"
	"sjsage522/lotteryscraper/services/cache"
	"sjsage522/lotteryscraper/services/publisher"
	"sjsage522/lotteryscraper/services/worker"

	"github.com/joho/godotenv"
)

// memcacheTimeout bounds every page cache call
const memcacheTimeout = 500 * time.Millisecond

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Int("year", cfg.Year).
		Str("csv", cfg.CSVPath).
		Str("parquet", cfg.ParquetPath).
		Msg("Starting lottery scrape")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	draws, err := run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Scrape failed")
	}

	log.Info().Int("draws", len(draws)).Msg("Done")
}

// run scrapes the configured year and writes the output files
func run(ctx context.Context, cfg *config.Config) ([]lottery.DrawRecord, error) {
	deps := initializeServices(ctx, cfg)
	defer deps.Cleanup()

	scraper := lottery.NewScraper(
		cfg.LotteryURL,
		helpers.NewHTTPClient(cfg.FetchTimeout, cfg.UserAgent),
		deps.Cache,
		cfg.PageCacheTTL,
	)

	w := worker.NewWorker(
		scraper,
		deps.Publisher,
		helpers.NewLogger(cfg.ErrorLogFile),
		cfg.CSVPath,
		cfg.ParquetPath,
	)

	return w.Run(cfg.Year)
}

// initializeServices connects the optional page cache and publisher.
// A service that is not configured or not reachable is left disabled.
func initializeServices(ctx context.Context, cfg *config.Config) *internal.Dependencies {
	deps := &internal.Dependencies{}

	if cfg.MemcacheAddr != "" {
		cacheService := cache.NewMemcacheService(cfg.MemcacheAddr, memcacheTimeout)
		if err := cacheService.Ping(); err != nil {
			logger.ForCache().Warn().Err(err).Str("addr", cfg.MemcacheAddr).Msg("Memcache unavailable, page cache disabled")
		} else {
			deps.Cache = cacheService
			logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)
		}
	}

	if cfg.RedisAddr != "" {
		redisPublisher := publisher.NewRedisPublisher(
			ctx,
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamMaxLength,
		)
		if err := redisPublisher.Ping(); err != nil {
			logger.ForPublisher().Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, publishing disabled")
			redisPublisher.Close()
		} else {
			deps.Publisher = redisPublisher
			logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
				cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
		}
	}

	return deps
}
