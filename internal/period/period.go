// Package period matches dates against named, anchored time windows.
package period

import (
	"time"

	"github.com/hpungsan/nametimeperiod/internal/calendar"
)

// Default is reported when no period contains the query date.
const Default = "Default"

// Spec describes a window around an anchor date.
type Spec struct {
	// Anchor is an anchor expression understood by calendar.ParseAnchor,
	// e.g. "Easter", "The second Sunday of May" or "February 6".
	Anchor string

	// DaysBefore and DaysAfter extend the window from the anchor. Both are >= 0.
	DaysBefore int
	DaysAfter  int

	// Comment is free text carried through from configuration.
	Comment string
}

// Named is a Spec with the label reported when it matches.
type Named struct {
	Name string
	Spec Spec
}

// List is an ordered sequence of periods. Earlier entries take precedence.
type List []Named

// Window returns the inclusive window [anchor-DaysBefore, anchor+DaysAfter]
// for the anchor resolved in year. ok is false if the anchor does not resolve.
func (s Spec) Window(year int) (start, end time.Time, ok bool) {
	anchor, ok := calendar.ParseAnchor(s.Anchor, year)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return anchor.AddDate(0, 0, -s.DaysBefore), anchor.AddDate(0, 0, s.DaysAfter), true
}

// Contains reports whether date falls inside the window anchored in date's
// own calendar year. Windows that spill into a neighbouring year are not
// evaluated against that year's anchor.
func (s Spec) Contains(date time.Time) bool {
	day := calendar.Day(date)
	start, end, ok := s.Window(day.Year())
	if !ok {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

// Match returns the name of the first period in list containing date, or
// Default when none does.
func Match(list List, date time.Time) string {
	for _, p := range list {
		if p.Spec.Contains(date) {
			return p.Name
		}
	}
	return Default
}

// Unresolved returns the names of periods whose anchors do not resolve in year.
func Unresolved(list List, year int) []string {
	var names []string
	for _, p := range list {
		if _, ok := calendar.ParseAnchor(p.Spec.Anchor, year); !ok {
			names = append(names, p.Name)
		}
	}
	return names
}
