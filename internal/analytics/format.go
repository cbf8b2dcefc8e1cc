package analytics

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DateLayout renders dates the way a zh-CN locale does with numeric year,
// short month, numeric day and two-digit hour and minute.
const DateLayout = "2006年1月2日 15:04"

// FormatDuration renders seconds as "Hh Mm Ss", dropping the hours part
// when zero and the minutes part when hours and minutes are both zero.
// Fractional seconds are kept.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	hours := int64(seconds / 3600)
	minutes := int64(math.Mod(seconds, 3600) / 60)
	secs := strconv.FormatFloat(math.Mod(seconds, 60), 'f', -1, 64)

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ss", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ss", minutes, secs)
	default:
		return secs + "s"
	}
}

// FormatDate parses an ISO-8601 timestamp and renders it in loc.
func FormatDate(iso string, loc *time.Location) (string, error) {
	ts, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", iso, err)
	}
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format(DateLayout), nil
}
