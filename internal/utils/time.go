package utils

import "time"

// Night surcharge window: [21:30, 06:00), wrapping past midnight.
const (
	nightStartMinutes = 21*60 + 30
	nightEndMinutes   = 6 * 60
)

// IsNightTime reports whether t falls inside the night surcharge window.
// The lower bound is inclusive (21:30 is night), the upper exclusive (06:00 is not).
func IsNightTime(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	return minutes >= nightStartMinutes || minutes < nightEndMinutes
}
