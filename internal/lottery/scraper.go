package lottery

import (
	"strconv"
	"strings"
	"time"

	"sjsage522/lotteryscraper/helpers"
	"sjsage522/lotteryscraper/logger"
	"sjsage522/lotteryscraper/pkg/errors"
	"sjsage522/lotteryscraper/services/cache"
)

// SourceName identifies myhora.com in logs and errors
const SourceName = "myhora"

// Fetcher retrieves a page body as UTF-8
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// Scraper fetches and parses the myhora.com lottery stats page
type Scraper struct {
	URLTemplate string
	Fetcher     Fetcher
	CacheSvc    cache.CacheService
	CacheTTL    time.Duration
}

// Ensure Scraper implements Source and HTTPClient implements Fetcher
var (
	_ Source  = (*Scraper)(nil)
	_ Fetcher = (*helpers.HTTPClient)(nil)
)

// NewScraper creates a scraper for urlTemplate, where {year} is replaced by the
// requested year. cacheSvc may be nil.
func NewScraper(urlTemplate string, fetcher Fetcher, cacheSvc cache.CacheService, cacheTTL time.Duration) *Scraper {
	return &Scraper{
		URLTemplate: urlTemplate,
		Fetcher:     fetcher,
		CacheSvc:    cacheSvc,
		CacheTTL:    cacheTTL,
	}
}

// GetName returns the scraper name
func (s *Scraper) GetName() string {
	return "MyhoraScraper"
}

// URL returns the stats page URL for a year
func (s *Scraper) URL(year int) string {
	return strings.ReplaceAll(s.URLTemplate, "{year}", strconv.Itoa(year))
}

// FetchPage returns the raw HTML of the stats page for a year
func (s *Scraper) FetchPage(year int) (string, error) {
	if year <= 0 {
		return "", errors.NewValidation(SourceName, "year must be a positive integer")
	}

	log := logger.ForScraper().WithField("year", year)

	key := cache.PageKey(year)
	if s.CacheSvc != nil {
		if page, err := s.CacheSvc.Get(key); err == nil {
			log.Debug().Str("key", key).Msg("Using cached page")
			return string(page), nil
		}
	}

	url := s.URL(year)
	log.Info().Str("url", url).Msg("Fetching stats page")

	body, err := s.Fetcher.Fetch(url)
	if err != nil {
		return "", errors.NewNetwork(SourceName, "failed to fetch stats page", err)
	}

	if s.CacheSvc != nil {
		if err := s.CacheSvc.Set(key, body, s.CacheTTL); err != nil {
			log.Warn().Err(errors.NewCache(key, "failed to cache page", err)).Msg("Page not cached")
		}
	}

	return string(body), nil
}

// FetchDraws fetches the stats page for a year and parses its draws
func (s *Scraper) FetchDraws(year int) ([]DrawRecord, error) {
	page, err := s.FetchPage(year)
	if err != nil {
		return nil, err
	}

	draws, err := ParseDraws(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	logger.ForScraper().Info().
		Int("year", year).
		Int("draws", len(draws)).
		Msg("Parsed stats page")

	return draws, nil
}
