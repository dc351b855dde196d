package repository

import (
	"strconv"
	"time"
)

// boolToString converts a Go bool to the "true"/"false" text stored for flags.
func boolToString(b bool) string {
	return strconv.FormatBool(b)
}

// stringToBool parses a stored flag. Anything other than a recognised
// boolean reports ok=false so callers can fall back to their default.
func stringToBool(s string) (value bool, ok bool) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return b, true
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
