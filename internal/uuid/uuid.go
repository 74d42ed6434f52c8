// Package uuid generates the identifiers the service hands out: audit
// correlation ids (row keys) and request ids.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// NewCorrelationID returns a fresh UUIDv7 string. UUIDv7 values are unique and
// sort by creation time, which keeps audit rows in write order within a
// partition.
func NewCorrelationID() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the clock-based generator fails.
		return googleuuid.NewString()
	}
	return id.String()
}

// NewRequestID returns a random UUIDv4 string for request tracing.
func NewRequestID() string {
	return googleuuid.NewString()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
