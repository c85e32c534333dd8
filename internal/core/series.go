package core

import "sort"

// UncategorizedLabel is the pie slice label for records whose category field
// was empty at aggregation time.
const UncategorizedLabel = "Uncategorized"

type (
	// Point is one (date, amount) pair of a line series.
	Point struct {
		Date   string `json:"date"`
		Amount Money  `json:"amount"`
	}

	// Slice is one (label, amount) pair of a pie series.
	Slice struct {
		Label  string `json:"label"`
		Amount Money  `json:"amount"`
	}
)

// LineSeries converts a per-day grouping into an ordered series, sorted
// ascending by date. Lexicographic order on YYYY-MM-DD keys is exact
// calendar order. An empty grouping yields an empty (non-nil) series so
// consumers render an explicit no-data state rather than an empty chart.
func LineSeries(byDay map[string]Money) []Point {
	out := make([]Point, 0, len(byDay))
	for key, amount := range byDay {
		out = append(out, Point{Date: key, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// PieSeries converts a per-category grouping into a labeled series in
// aggregation order. Labels resolve through the directory, falling back to
// the raw identifier when unresolved and to UncategorizedLabel when the
// category field was empty. No slice is zero-filled or merged.
func PieSeries(byCategory []CategoryAmount, dir *Directory) []Slice {
	out := make([]Slice, 0, len(byCategory))
	for _, ca := range byCategory {
		label := ca.Category
		if label == "" {
			label = UncategorizedLabel
		} else if c, ok := dir.Lookup(ca.Category); ok {
			label = c.Name
		}
		out = append(out, Slice{Label: label, Amount: ca.Amount})
	}
	return out
}

// AvailableMonths returns the distinct YYYY-MM keys of all records' dates,
// most recent first, for populating a month picker. It is a function of the
// whole record set, not of the current window. Absent dates are skipped.
func AvailableMonths(records []Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		if r.Date.IsAbsent() {
			continue
		}
		key := r.Date.MonthKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}
