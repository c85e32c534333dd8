package core

import "fmt"

const (
	WindowAll   WindowKind = "all"
	WindowDay   WindowKind = "day"
	WindowWeek  WindowKind = "week"
	WindowMonth WindowKind = "month"
)

type (
	WindowKind string

	// Window is the time scope used to filter records before aggregation.
	// It carries the anchor for its kind and is produced fresh on every
	// query; it is never persisted.
	Window struct {
		Kind  WindowKind
		Day   Date // day anchor
		Year  int  // week and month anchor
		Week  int
		Month int // 1-12
	}
)

// AllTime returns the window covering every record.
func AllTime() Window { return Window{Kind: WindowAll} }

// DayOf returns the window matching exactly the given date.
func DayOf(d Date) Window { return Window{Kind: WindowDay, Day: d} }

// WeekOf returns the window for the given year and week number.
func WeekOf(year, week int) Window {
	return Window{Kind: WindowWeek, Year: year, Week: week}
}

// MonthOf returns the window for the given year and month.
func MonthOf(year, month int) Window {
	return Window{Kind: WindowMonth, Year: year, Month: month}
}

// Filter returns the records whose date falls inside the window. The input
// is never mutated and relative order is preserved. Records with an absent
// date are excluded from day/week/month windows and included only under the
// all-time window; malformed dates never raise. An unrecognized window kind
// panics: that is a caller bug, not bad data.
func Filter(records []Record, w Window) []Record {
	switch w.Kind {
	case WindowAll:
		return records
	case WindowDay:
		return filterFunc(records, func(d Date) bool {
			return d.Equal(w.Day.Time)
		})
	case WindowWeek:
		start, end := WeekRange(w.Year, w.Week)
		return filterFunc(records, func(d Date) bool {
			return !d.Before(start.Time) && !d.After(end.Time)
		})
	case WindowMonth:
		return filterFunc(records, func(d Date) bool {
			return d.Year() == w.Year && d.Month() == w.Month
		})
	default:
		panic(fmt.Sprintf("core: unknown window kind %q", w.Kind))
	}
}

func filterFunc(records []Record, keep func(Date) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Date.IsAbsent() {
			continue
		}
		if keep(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

// DistinctCategories returns the category identifiers appearing in the given
// (already time-filtered) records, in first-appearance order. Used to
// populate the category selector scoped to the current window.
func DistinctCategories(records []Record) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, r := range records {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}
