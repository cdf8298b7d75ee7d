package calendar

import "time"

// NthWeekday returns the nth (1-indexed) occurrence of weekday in the given
// month. ok is false when n < 1 or the month has fewer than n such days.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) (time.Time, bool) {
	if n < 1 {
		return time.Time{}, false
	}

	count := 0
	for day := 1; day <= 31; day++ {
		date, ok := dateOf(year, month, day)
		if !ok {
			continue
		}
		if date.Weekday() == weekday {
			count++
			if count == n {
				return date, true
			}
		}
	}
	return time.Time{}, false
}

// LastWeekday returns the last occurrence of weekday in the given month.
func LastWeekday(year int, month time.Month, weekday time.Weekday) (time.Time, bool) {
	for day := 31; day >= 1; day-- {
		date, ok := dateOf(year, month, day)
		if !ok {
			continue
		}
		if date.Weekday() == weekday {
			return date, true
		}
	}
	return time.Time{}, false
}
