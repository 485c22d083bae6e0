package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"sjsage522/lotteryscraper/pkg/errors"
)

const (
	// DefaultLotteryURL is the stats page of myhora.com; {year} is replaced by the short Buddhist year
	DefaultLotteryURL = "https://www.myhora.com/lottery/stats.aspx?mx=09&vx={year}"

	// DefaultUserAgent is sent with every request to the stats page
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

	// YearPlaceholder marks where the year goes in LotteryURL
	YearPlaceholder = "{year}"
)

// Config represents the application configuration
type Config struct {
	// Scrape configuration
	Year         int
	LotteryURL   string
	UserAgent    string
	FetchTimeout time.Duration

	// Output files
	CSVPath     string
	ParquetPath string

	// Memcache configuration (page cache is disabled when empty)
	MemcacheAddr string
	PageCacheTTL time.Duration

	// Redis configuration (publishing is disabled when empty)
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamMaxLength int

	// ErrorLogFile receives a line per failed step when set
	ErrorLogFile string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	year, _ := strconv.Atoi(getEnv("LOTTERY_YEAR", "35"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "10"))
	cacheTTL, _ := strconv.Atoi(getEnv("PAGE_CACHE_TTL_SECONDS", "3600"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisStreamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "1000"))

	csvPath := getEnv("OUTPUT_CSV", "lottery_results.csv")

	return &Config{
		Year:                 year,
		LotteryURL:           getEnv("LOTTERY_URL", DefaultLotteryURL),
		UserAgent:            getEnv("LOTTERY_USER_AGENT", DefaultUserAgent),
		FetchTimeout:         time.Duration(fetchTimeout) * time.Second,
		CSVPath:              csvPath,
		ParquetPath:          getEnv("OUTPUT_PARQUET", ParquetPathFor(csvPath)),
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", ""),
		PageCacheTTL:         time.Duration(cacheTTL) * time.Second,
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "lottery_draws"),
		RedisStreamMaxLength: redisStreamMaxLength,
		ErrorLogFile:         getEnv("ERROR_LOG_FILE", ""),
		Environment:          getEnv("LOTTERY_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the scraper cannot run with
func (c *Config) Validate() error {
	if c.Year <= 0 {
		return errors.NewConfiguration("LOTTERY_YEAR must be a positive integer", nil)
	}
	if !strings.Contains(c.LotteryURL, YearPlaceholder) {
		return errors.NewConfiguration("LOTTERY_URL must contain "+YearPlaceholder, nil)
	}
	if c.FetchTimeout <= 0 {
		return errors.NewConfiguration("FETCH_TIMEOUT_SECONDS must be positive", nil)
	}
	if c.CSVPath == "" || c.ParquetPath == "" {
		return errors.NewConfiguration("output paths must not be empty", nil)
	}
	return nil
}

// ParquetPathFor derives the parquet file name from a csv file name
func ParquetPathFor(csvPath string) string {
	if strings.HasSuffix(csvPath, ".csv") {
		return strings.TrimSuffix(csvPath, ".csv") + ".parquet"
	}
	return csvPath + ".parquet"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
