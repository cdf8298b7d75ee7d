// Package calendar resolves anchor-date expressions to calendar dates.
package calendar

import "time"

// gregorianReform is the first full year of the Gregorian calendar; the
// computus below is meaningless for earlier years.
const gregorianReform = 1583

// Easter returns Western Easter Sunday for the given year using the
// anonymous Gregorian computus (Meeus/Jones/Butcher).
//
// ok is false for years before 1583 or when the arithmetic does not land
// on a real calendar day.
func Easter(year int) (time.Time, bool) {
	if year < gregorianReform {
		return time.Time{}, false
	}

	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return dateOf(year, time.Month(month), day)
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day strips the time of day and zone from t, keeping its calendar date.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// dateOf is Date without normalization: ok is false when day does not
// exist in month (e.g. April 31).
func dateOf(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	t := Date(year, month, day)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
