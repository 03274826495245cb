package parser

import (
	"fmt"
	"strings"
	"time"
)

// inputLayout is the editable-field format: zero-padded, minute precision.
const inputLayout = "2006-01-02T15:04"

// ParseDateTime parses loosely-formatted date/time input.
// Supported formats:
// - "YYYY-MM-DDTHH:mm[:ss]" (the machine-readable separator)
// - "YYYY-MM-DD HH:mm[:ss]" (a single space as separator)
// Seconds default to :00 when omitted. Times are interpreted in the local
// zone. Empty or unparsable input returns an error, never a zero time the
// caller could mistake for a real instant.
func ParseDateTime(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	// Normalize "YYYY-MM-DD HH:mm" to the T-separated form first
	if !strings.Contains(s, "T") {
		s = strings.Replace(s, " ", "T", 1)
	}

	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(inputLayout, s, time.Local); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q. Use a format like 2025-09-23T18:30 or 2025-09-23 18:30:00", input)
}

// ToInputValue formats a timestamp as a YYYY-MM-DDThh:mm local string for
// editable fields. Nil yields an empty string. Seconds are dropped, so the
// result is for display and editing only, never the stored value.
func ToInputValue(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Local().Format(inputLayout)
}
