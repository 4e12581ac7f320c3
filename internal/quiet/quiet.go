// Package quiet implements the quiet-hours window predicate.
package quiet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock converts a "HH:MM" 24-hour clock string to minutes since
// midnight.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight back as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// InQuietHours reports whether now falls inside the quiet window given by
// startMin and endMin (minutes since midnight). A window with equal start
// and end covers the whole day. A window whose start is after its end
// spans midnight.
func InQuietHours(now time.Time, startMin, endMin int, enabled bool) bool {
	if !enabled {
		return false
	}
	nowMin := now.Hour()*60 + now.Minute()
	switch {
	case startMin == endMin:
		return true
	case startMin < endMin:
		return startMin <= nowMin && nowMin < endMin
	default:
		return nowMin >= startMin || nowMin < endMin
	}
}
