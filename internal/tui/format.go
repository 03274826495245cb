package tui

import (
	"fmt"
	"time"
)

// formatClock formats elapsed seconds as HH:MM:SS
func formatClock(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// formatDateTime formats a timestamp for table display in the local zone
func formatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("Jan 02, 2006 03:04 PM")
}
