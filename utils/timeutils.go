package utils

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DisplayTimeLayout is the German date format used for all timestamps in
// the incident output: DD.MM.YYYY HH:MM.
const DisplayTimeLayout = "02.01.2006 15:04"

// LoadLocation resolves an IANA timezone name. The tzdata fallback is
// embedded so scratch containers without a zoneinfo directory still work.
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// FormatEpochMillis renders an epoch-milliseconds timestamp in the display
// layout for the given location. ok is false when the value cannot name a
// real instant (non-positive, or outside the printable calendar range).
func FormatEpochMillis(ms int64, loc *time.Location) (string, bool) {
	if ms <= 0 {
		return "", false
	}
	t := time.UnixMilli(ms).In(loc)
	if y := t.Year(); y < 1970 || y > 9999 {
		return "", false
	}
	return t.Format(DisplayTimeLayout), true
}

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601FromUnixMillis converts an epoch-milliseconds timestamp to ISO8601 format
func Iso8601FromUnixMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
