package format

import (
	"fmt"
	"strings"
	"time"

	krformat "github.com/Dorico-Dynamics/txova-go-krformat"
)

// DefaultDateSeparator is the conventional separator for Korean dates: 2024.01.15.
const DefaultDateSeparator = "."

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	time.RFC3339Nano,
}

// Date formats a date string as YYYY{sep}MM{sep}DD in local time.
// Example: Date("2024-01-15", ".") => "2024.01.15".
// Unparseable input is returned unchanged.
func Date(date string, separator string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return Time(t, separator)
}

// Time formats t as YYYY{sep}MM{sep}DD in its own location.
func Time(t time.Time, separator string) string {
	return fmt.Sprintf("%d%s%02d%s%02d", t.Year(), separator, int(t.Month()), separator, t.Day())
}

// ParseDate parses s as a calendar date or timestamp.
// Values without a zone are read in time.Local; zoned values are converted to it.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.In(time.Local), nil
		}
	}
	return time.Time{}, krformat.InvalidDate("unrecognised date: " + s)
}
