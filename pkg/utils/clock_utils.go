// utils/clock_utils.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock splits a 24-hour "HH:MM" string. It is strict about shape but
// tolerant of missing zero padding ("8:05" parses as 08:05).
func ParseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad clock value %q", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad clock hour %q", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad clock minute %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock value %q out of range", value)
	}
	return hour, minute, nil
}

// FormatClock renders hour/minute back into zero-padded "HH:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// NextHour returns the clock one hour after value, hour wrapping mod 24 and
// minutes preserved ("23:30" -> "00:30"). Unparseable input yields fallback.
func NextHour(value string, fallback string) string {
	hour, minute, err := ParseClock(value)
	if err != nil {
		return fallback
	}
	return FormatClock((hour+1)%24, minute)
}
