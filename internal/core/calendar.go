package core

import "time"

// Week numbering convention: week 1 is the week containing the first
// Thursday of January, running Monday through Sunday. This is ISO-8601-like
// but loose at the edges: days before week 1's Monday report week 0, late
// December days falling into next year's week 1 report week 1, and asking
// for a week past the year's end yields a range spilling into the next
// year. All are accepted, not rejected.

// week1Monday returns the Monday starting week 1 of the given year.
func week1Monday(year int) Date {
	jan1 := NewDate(year, 1, 1)
	offset := (4 - int(jan1.Weekday()) + 7) % 7
	firstThursday := jan1.AddDays(offset)
	return firstThursday.AddDays(-3)
}

// WeekNumber returns the 1-based week number of d. A date on or after the
// Monday starting next year's week 1 belongs to that week, so the round trip
// with WeekRange holds even when week 1 starts in late December.
func WeekNumber(d Date) int {
	if next := week1Monday(d.Year() + 1); !d.Before(next.Time) {
		return 1
	}
	start := week1Monday(d.Year())
	days := int(d.Time.Sub(start.Time) / (24 * time.Hour))
	if days < 0 {
		// floor division for the leading days of January
		return (days-6)/7 + 1
	}
	return days/7 + 1
}

// WeekRange returns the inclusive Monday-through-Sunday date range of the
// given week of the given year. Defined for any week >= 1 with no
// upper-bound validation.
func WeekRange(year, week int) (Date, Date) {
	start := week1Monday(year).AddDays(7 * (week - 1))
	return start, start.AddDays(6)
}
