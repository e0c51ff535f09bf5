package utils

import "time"

// ISOLayout renders UTC instants with microsecond precision and a literal Z.
const ISOLayout = "2006-01-02T15:04:05.000000Z"

// Clock returns the current instant. Handlers and services take one so tests can pin time.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

// FormatTimestamp formats t in UTC using ISOLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}
