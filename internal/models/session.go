package models

import (
	"time"
)

// WorkSession represents a single tracked block of work time
type WorkSession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     string     `gorm:"not null;index" json:"user_id"`
	CheckIn    time.Time  `gorm:"not null" json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	TotalHours *float64   `json:"total_hours"`
}

// IsOpen reports whether the session is still running (no check-out recorded)
func (s WorkSession) IsOpen() bool {
	return s.CheckOut == nil
}

// Hours returns the session duration in hours. A stored total_hours is
// authoritative and returned verbatim. Without one the duration is derived
// from check_in/check_out, clamped at zero when the clocks disagree. An open
// session without a stored total reports zero.
func (s WorkSession) Hours() float64 {
	if s.TotalHours != nil {
		return *s.TotalHours
	}
	if s.CheckOut != nil {
		if h := s.CheckOut.Sub(s.CheckIn).Hours(); h >= 0 {
			return h
		}
	}
	return 0
}

// ElapsedSeconds returns whole seconds elapsed between check-in and now,
// never negative. Used for the live timer display.
func (s WorkSession) ElapsedSeconds(now time.Time) int {
	secs := int(now.Sub(s.CheckIn).Seconds())
	if secs < 0 {
		return 0
	}
	return secs
}
