package id

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// New returns a fresh expense ID. IDs are UUIDv7, so they sort by creation
// time and are monotonic within a process.
func New() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating id: %w", err)
	}
	return u.String(), nil
}

// Valid reports whether s is an acceptable expense ID: a UUID, or a legacy
// numeric creation timestamp such as "1709251200000".
func Valid(s string) bool {
	if s == "" {
		return false
	}
	if _, err := uuid.Parse(s); err == nil {
		return true
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
