package timeutil

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/jot/pkg/journal"
)

var units = []struct {
	label string
	value time.Duration
}{
	{"w", 7 * 24 * time.Hour},
	{"d", 24 * time.Hour},
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
}

// FormatAge renders d with week/day/hour/minute/second tokens, keeping at
// most the two largest non-zero units, for example "2d3h".
func FormatAge(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if len(parts) == 2 {
			break
		}
		if remaining < u.value {
			if len(parts) > 0 {
				break
			}
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	return strings.Join(parts, "")
}

// Since parses a journal timestamp written with layout and returns how long
// before now it was.
func Since(stamp, layout string, now time.Time) (time.Duration, error) {
	if layout == "" {
		layout = journal.DefaultLayout
	}
	t, err := time.ParseInLocation(layout, strings.TrimSpace(stamp), time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", stamp, err)
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	return d, nil
}
