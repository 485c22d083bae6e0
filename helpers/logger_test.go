package helpers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "scrape_errors.log")

	logger := NewLogger(tmpFile)

	logger.LogError("Publisher", errors.New("test error"))

	data, err := os.ReadFile(tmpFile)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "[Publisher]")
	assert.Contains(t, string(data), "test error")

	// Info messages go to the structured logger, not the file
	logger.LogInfo("Test info message: %s", "hello")

	data, err = os.ReadFile(tmpFile)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "hello")
}

func TestLoggerWithoutFile(t *testing.T) {
	logger := NewLogger("")

	assert.NotPanics(t, func() {
		logger.LogError("Exporter", errors.New("test error"))
	})
}
