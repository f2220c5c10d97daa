package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateStamp formats t as a calendar date for report headers and file names.
func DateStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
