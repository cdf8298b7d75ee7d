package calendar

import (
	"testing"
	"time"
)

func TestNthWeekday(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    time.Time
		wantOK  bool
	}{
		{"thanksgiving 2025", 2025, time.November, time.Thursday, 4, Date(2025, time.November, 27), true},
		{"labor day 2025", 2025, time.September, time.Monday, 1, Date(2025, time.September, 1), true},
		{"mlk day 2025", 2025, time.January, time.Monday, 3, Date(2025, time.January, 20), true},
		{"mothers day 2025", 2025, time.May, time.Sunday, 2, Date(2025, time.May, 11), true},
		{"fifth monday exists", 2025, time.March, time.Monday, 5, Date(2025, time.March, 31), true},
		{"fifth thursday leap february", 2024, time.February, time.Thursday, 5, Date(2024, time.February, 29), true},
		{"fifth monday missing", 2025, time.February, time.Monday, 5, time.Time{}, false},
		{"zero n", 2025, time.May, time.Sunday, 0, time.Time{}, false},
		{"negative n", 2025, time.May, time.Sunday, -1, time.Time{}, false},
		{"sixth never exists", 2025, time.March, time.Monday, 6, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NthWeekday(tt.year, tt.month, tt.weekday, tt.n)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
			}
		})
	}
}

func TestNthWeekday_Properties(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025, 2100} {
		for month := time.January; month <= time.December; month++ {
			for wd := time.Sunday; wd <= time.Saturday; wd++ {
				for n := 1; n <= 5; n++ {
					got, ok := NthWeekday(year, month, wd, n)
					if !ok {
						continue
					}
					if got.Weekday() != wd || got.Month() != month || got.Year() != year {
						t.Fatalf("NthWeekday(%d, %s, %s, %d) = %s", year, month, wd, n, got.Format(time.DateOnly))
					}
					earlier := 0
					for d := 1; d < got.Day(); d++ {
						if Date(year, month, d).Weekday() == wd {
							earlier++
						}
					}
					if earlier != n-1 {
						t.Fatalf("NthWeekday(%d, %s, %s, %d) = %s has %d earlier matches", year, month, wd, n, got.Format(time.DateOnly), earlier)
					}
				}
			}
		}
	}
}

func TestLastWeekday(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		want    time.Time
	}{
		{"memorial day 2025", 2025, time.May, time.Monday, Date(2025, time.May, 26)},
		{"memorial day 2024", 2024, time.May, time.Monday, Date(2024, time.May, 27)},
		{"leap february thursday", 2024, time.February, time.Thursday, Date(2024, time.February, 29)},
		{"thirty day month", 2025, time.April, time.Wednesday, Date(2025, time.April, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LastWeekday(tt.year, tt.month, tt.weekday)
			if !ok {
				t.Fatal("unresolved")
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
			}
		})
	}
}

func TestLastWeekday_Properties(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025} {
		for month := time.January; month <= time.December; month++ {
			for wd := time.Sunday; wd <= time.Saturday; wd++ {
				got, ok := LastWeekday(year, month, wd)
				if !ok {
					t.Fatalf("LastWeekday(%d, %s, %s) unresolved", year, month, wd)
				}
				if got.Weekday() != wd || got.Month() != month {
					t.Fatalf("LastWeekday(%d, %s, %s) = %s", year, month, wd, got.Format(time.DateOnly))
				}
				if next := got.AddDate(0, 0, 7); next.Month() == month {
					t.Fatalf("LastWeekday(%d, %s, %s) = %s but %s is later", year, month, wd, got.Format(time.DateOnly), next.Format(time.DateOnly))
				}
			}
		}
	}
}
