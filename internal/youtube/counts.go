package youtube

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DisplayCount is a human-formatted count exactly as YouTube renders it
// ("1.2M subscribers", "12,345 views"). It is deliberately a distinct type
// from any numeric count: display strings are passed through to callers
// unparsed, and arithmetic only ever happens on fields that went through
// ParseCount.
type DisplayCount string

func (d DisplayCount) String() string { return string(d) }

// ParseCount converts a comma-separated integer string ("12,345") to an
// int64. Abbreviated forms ("1.2M") are not parsed; callers needing
// arithmetic must extract a genuinely numeric field.
func ParseCount(s string) (int64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

var joinedDateRe = regexp.MustCompile(`(\w+)\s+(\d+),\s+(\d+)`)

var monthIndex = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// ParseJoinedDate parses the "Jan 2, 2006" form used in the channel About
// page's joinedDateText.
func ParseJoinedDate(s string) (time.Time, bool) {
	m := joinedDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := monthIndex[m[1][:min(3, len(m[1]))]]
	if !ok {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(m[2])
	year, err2 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// DaysSince returns whole days between t and now, never negative.
func DaysSince(t, now time.Time) int {
	d := int(now.Sub(t).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
