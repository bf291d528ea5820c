package service

import (
	"fmt"
	"time"
)

// Shift labels derived from the time-in hour.
const (
	ShiftMorning   = "Morning"
	ShiftAfternoon = "Afternoon"
	ShiftNight     = "Night"
)

// ShiftLabel buckets a time-in into a shift: 06-14h Morning, 14-22h
// Afternoon, everything else Night.
func ShiftLabel(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour >= 6 && hour < 14:
		return ShiftMorning
	case hour >= 14 && hour < 22:
		return ShiftAfternoon
	default:
		return ShiftNight
	}
}

// CalculateTotalHours formats the absolute difference between time-in and
// time-out as hours with two decimals. A missing endpoint yields "0.00".
func CalculateTotalHours(timeIn, timeOut *time.Time) string {
	if timeIn == nil || timeOut == nil {
		return "0.00"
	}

	diff := timeOut.Sub(*timeIn)
	if diff < 0 {
		diff = -diff
	}

	return fmt.Sprintf("%.2f", diff.Hours())
}

// FormatTime renders a timestamp string as a 12-hour clock label. An
// unparsable value falls back to "12:00 AM".
func FormatTime(value string) string {
	layouts := []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"15:04:05",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("3:04 PM")
		}
	}

	return "12:00 AM"
}
