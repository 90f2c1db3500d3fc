package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a time string that could not be parsed.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time format '%s': expected HH:MM:SS, MM:SS, or seconds", e.Input)
}

// ParseSeconds parses a time string into seconds. Accepted forms, by colon
// count: "HH:MM:SS", "MM:SS", or raw seconds. Each component may be a float.
// Negative components are rejected here rather than at range validation.
func ParseSeconds(timeStr string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(timeStr), ":")
	if len(parts) > 3 {
		return 0, &ParseError{Input: timeStr}
	}

	total := 0.0
	for _, part := range parts {
		val, err := strconv.ParseFloat(part, 64)
		if err != nil || val < 0 {
			return 0, &ParseError{Input: timeStr}
		}
		total = total*60 + val
	}

	return total, nil
}

// FormatSeconds formats seconds as H:MM:SS (e.g. 0:01:30, 1:11:22).
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}
