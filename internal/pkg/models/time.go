package models

import "time"

// Now returns the current UTC time. Persisted timestamps are always UTC
// so tracks recorded across timezones compare correctly.
func Now() time.Time {
	return time.Now().UTC()
}

// ParseTime parses an RFC3339 timestamp, the format the HTTP API accepts.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
