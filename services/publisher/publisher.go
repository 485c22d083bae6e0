package publisher

// Publisher represents a service for publishing draw records
type Publisher interface {
	// Publish publishes a message under key
	Publish(key string, message []byte) error

	// TrimStream trims the stream to the configured maximum length
	TrimStream() error

	// Close closes the publisher connection
	Close() error
}
