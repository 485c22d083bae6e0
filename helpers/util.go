package helpers

import (
	"strings"
)

// SplitFields splits s on runs of whitespace
func SplitFields(s string) []string {
	return strings.Fields(s)
}

// SplitAt splits s on whitespace and returns the first n parts and the rest.
// Both slices are non-nil.
func SplitAt(s string, n int) ([]string, []string) {
	parts := SplitFields(s)
	if n > len(parts) {
		n = len(parts)
	}
	head := append([]string{}, parts[:n]...)
	tail := append([]string{}, parts[n:]...)
	return head, tail
}
