package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// humanLayout matches JavaScript's Date.toDateString(), which the log
// listing endpoint has always used for entry dates.
const humanLayout = "Mon Jan 02 2006"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Sentinels for open-ended date-range queries.
var (
	MinDate = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// IsValidDate reports whether s is a well-formed YYYY-MM-DD string naming a
// real calendar date. The round-trip through Format rejects overflowed
// components (2019-02-30, 2019-13-01) as well as unpadded forms.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}
	return d.Format(dateLayout) == s
}

// ParseDate parses a YYYY-MM-DD string already vetted by IsValidDate.
func ParseDate(s string) time.Time {
	d, _ := time.Parse(dateLayout, s)
	return d
}

// ParseLenientDate parses the from/to query parameters the forgiving way:
// split on hyphens, take three integer fields, and let time.Date normalize
// out-of-range components (month 13 rolls into the next year). Returns
// ok=false for inputs that don't yield three numbers.
func ParseLenientDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC), true
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func FormatHumanDate(t time.Time) string {
	return t.Format(humanLayout)
}
