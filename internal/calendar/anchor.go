package calendar

import (
	"regexp"
	"strings"
	"time"
)

// holidays maps lowercased holiday keywords to their resolvers (US conventions).
var holidays = map[string]func(year int) (time.Time, bool){
	"easter":       Easter,
	"thanksgiving": thanksgiving,
	"laborday":     laborDay,
	"memorialday":  memorialDay,
	"mlkday":       mlkDay,
}

// thanksgiving is the fourth Thursday of November.
func thanksgiving(year int) (time.Time, bool) {
	return NthWeekday(year, time.November, time.Thursday, 4)
}

// laborDay is the first Monday of September.
func laborDay(year int) (time.Time, bool) {
	return NthWeekday(year, time.September, time.Monday, 1)
}

// memorialDay is the last Monday of May.
func memorialDay(year int) (time.Time, bool) {
	return LastWeekday(year, time.May, time.Monday)
}

// mlkDay is the third Monday of January.
func mlkDay(year int) (time.Time, bool) {
	return NthWeekday(year, time.January, time.Monday, 3)
}

// ordinalPhrase matches "The second Sunday of May" anywhere in the expression.
var ordinalPhrase = regexp.MustCompile(`(?i)the\s+(\w+)\s+(\w+)\s+of\s+(\w+)`)

var ordinals = map[string]int{
	"first":  1,
	"second": 2,
	"third":  3,
	"fourth": 4,
	"fifth":  5,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// fixedLayouts are tried in order against "<expr> <leapYear>".
var fixedLayouts = []string{
	"January 2 2006",
	"Jan 2 2006",
}

// leapYear lets February 29 parse; the real year is checked afterwards.
const leapYear = "2000"

// ParseAnchor resolves an anchor expression against year. Rules are tried
// in order and the first one that applies decides the result:
//
//  1. holiday keywords: Easter, Thanksgiving, LaborDay, MemorialDay, MLKDay
//  2. ordinal phrases: "The <ordinal> <weekday> of <month>"
//  3. fixed dates: "<month> <day>", e.g. "February 6"
//
// An ordinal phrase with an unknown ordinal, weekday or month resolves to
// nothing; it is not retried as a fixed date. Matching is case-insensitive.
func ParseAnchor(expr string, year int) (time.Time, bool) {
	if resolve, ok := holidays[strings.ToLower(strings.TrimSpace(expr))]; ok {
		return resolve(year)
	}

	if m := ordinalPhrase.FindStringSubmatch(expr); m != nil {
		return parseOrdinalPhrase(m[1], m[2], m[3], year)
	}

	return parseFixedDate(expr, year)
}

func parseOrdinalPhrase(ordinal, weekday, month string, year int) (time.Time, bool) {
	n, ok := ordinals[strings.ToLower(ordinal)]
	if !ok {
		return time.Time{}, false
	}
	wd, ok := weekdays[strings.ToLower(weekday)]
	if !ok {
		return time.Time{}, false
	}
	mon, ok := months[strings.ToLower(month)]
	if !ok {
		return time.Time{}, false
	}
	return NthWeekday(year, mon, wd, n)
}

func parseFixedDate(expr string, year int) (time.Time, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, false
	}

	value := expr + " " + leapYear
	for _, layout := range fixedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return dateOf(year, t.Month(), t.Day())
		}
	}
	return time.Time{}, false
}
