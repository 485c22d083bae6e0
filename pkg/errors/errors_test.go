package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrapeErrorMessage(t *testing.T) {
	cause := stderrors.New("connection refused")

	err := NewNetwork("myhora", "fetch failed", cause)
	assert.Equal(t, "[network] myhora: fetch failed - connection refused", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))

	err = NewValidation("myhora", "year must be a positive integer")
	assert.Equal(t, "[validation] myhora: year must be a positive integer", err.Error())

	err = NewConfiguration("LOTTERY_YEAR must be positive", nil)
	assert.Equal(t, "[configuration] LOTTERY_YEAR must be positive", err.Error())
}

func TestIsType(t *testing.T) {
	err := NewParsing("myhora", "invalid draw date", nil)
	wrapped := fmt.Errorf("scrape year 35: %w", err)

	assert.True(t, IsType(wrapped, ErrorTypeParsing))
	assert.False(t, IsType(wrapped, ErrorTypeNetwork))
	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeParsing))
	assert.False(t, IsType(nil, ErrorTypeParsing))
}
