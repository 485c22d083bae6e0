package cache

import (
	"fmt"
	"time"
)

// CacheService represents a generic cache service
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}

// PageKey returns the cache key of the stats page for a Buddhist year
func PageKey(year int) string {
	return fmt.Sprintf("lottery:page:%d", year)
}
