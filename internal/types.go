package internal

import (
	"sjsage522/lotteryscraper/services/cache"
	"sjsage522/lotteryscraper/services/publisher"
)

// Dependencies holds the optional services of a scrape run; nil fields are disabled
type Dependencies struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
}

// Cleanup closes every service that holds a connection
func (d *Dependencies) Cleanup() {
	if d.Publisher != nil {
		d.Publisher.Close()
	}
}
