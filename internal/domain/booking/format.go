package booking

import (
	"time"

	"github.com/pkg/errors"
)

const (
	FormatMedium = "medium"
	FormatFull   = "full"
)

var timeLayouts = map[string]string{
	FormatMedium: "Mon 01, 02, 2006 3:04PM",
	FormatFull:   "Monday January, 2, 2006 at 3:04PM",
}

// FormatTime renders a show start time for display. Start times are wall-clock
// values kept in UTC, so they are shown in UTC. Unknown formats fall back to
// medium.
func FormatTime(t time.Time, format string) string {
	layout, ok := timeLayouts[format]
	if !ok {
		layout = timeLayouts[FormatMedium]
	}
	return t.UTC().Format(layout)
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseStartTime accepts the formats the show form and API clients send.
// Values without an offset are read as UTC.
func ParseStartTime(s string) (time.Time, error) {
	s = trim(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized start time %q", s)
}
