package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// clockPattern matches a zero-padded HH:MM string.
var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// spanPattern matches "Xh Ym", "Xh" or "Ym".
var spanPattern = regexp.MustCompile(`^(?:(\d+)h)?(?: ?(\d+)m)?$`)

// ParseTimeOfDay parses an "HH:MM" wall-clock time and returns its offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	if !clockPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// ParseSpan parses a human-readable span such as "1h 15m", "5h" or "45m".
func ParseSpan(s string) (time.Duration, error) {
	m := spanPattern.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("invalid duration %q: want e.g. 1h 15m", s)
	}

	var d time.Duration
	if m[1] != "" {
		hours, _ := strconv.Atoi(m[1])
		d += time.Duration(hours) * time.Hour
	}
	if m[2] != "" {
		mins, _ := strconv.Atoi(m[2])
		if mins > 59 && m[1] != "" {
			return 0, fmt.Errorf("invalid duration %q: minutes must be below 60", s)
		}
		d += time.Duration(mins) * time.Minute
	}
	return d, nil
}

// FormatSpan formats a duration as "Xh Ym", "Xh" or "Ym".
func FormatSpan(d time.Duration) string {
	total := int(d.Minutes())
	hours := total / 60
	mins := total % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
