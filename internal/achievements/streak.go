package achievements

import (
	"sort"
	"time"
)

const dayLayout = "2006-01-02"

// MaxStreak returns the length of the longest run of consecutive calendar
// days in dates. Input may be unordered and contain duplicates; each value is
// truncated to its first 10 characters and expected in YYYY-MM-DD form;
// callers normalize before calling, malformed values simply break the run.
func MaxStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(dates))
	unique := make([]string, 0, len(dates))
	for _, d := range dates {
		if len(d) > len(dayLayout) {
			d = d[:len(dayLayout)]
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	sort.Strings(unique)

	maxStreak := 1
	curr := 1
	for i := 1; i < len(unique); i++ {
		if daysBetween(unique[i-1], unique[i]) == 1 {
			curr++
			continue
		}
		if curr > maxStreak {
			maxStreak = curr
		}
		curr = 1
	}
	if curr > maxStreak {
		maxStreak = curr
	}
	return maxStreak
}

// daysBetween returns the calendar-day difference, or -1 when either value
// doesn't parse as a day.
func daysBetween(from, to string) int {
	a, err := time.Parse(dayLayout, from)
	if err != nil {
		return -1
	}
	b, err := time.Parse(dayLayout, to)
	if err != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}

// DayKey renders t in the form MaxStreak consumes.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}
