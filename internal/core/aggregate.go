package core

// CategoryAll is the selector value meaning "no category filter".
const CategoryAll = "all"

// CategoryAmount is an amount accumulated under one category identifier.
// The identifier is raw: resolving it to a display name is the
// presentation layer's job (see PieSeries).
type CategoryAmount struct {
	Category string
	Amount   Money
}

// Aggregation bundles everything derived from one filtered record set. It is
// recomputed on every query and never cached here; callers may cache the
// result for rendering only.
type Aggregation struct {
	Total      Money
	ByCategory []CategoryAmount
	ByDay      map[string]Money
	Categories []string
}

// Total sums the amounts of the given records in input order. An empty
// sequence sums to zero. Malformed stored amounts have already decoded to
// zero cents (see Money.UnmarshalJSON), so they contribute nothing here
// rather than failing.
func Total(records []Record) Money {
	var total Money
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// ByCategory accumulates amounts per category identifier, ordered by first
// appearance. Categories absent from the input get no entry; unknown
// identifiers still produce one, keyed by the raw value.
func ByCategory(records []Record) []CategoryAmount {
	index := make(map[string]int, len(records))
	var out []CategoryAmount
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(out)
			index[r.Category] = i
			out = append(out, CategoryAmount{Category: r.Category})
		}
		out[i].Amount = out[i].Amount.Add(r.Amount)
	}
	return out
}

// ByDay accumulates amounts under each record's canonical YYYY-MM-DD key.
// Records with an absent date are skipped.
func ByDay(records []Record) map[string]Money {
	out := make(map[string]Money)
	for _, r := range records {
		if r.Date.IsAbsent() {
			continue
		}
		key := r.Date.Key()
		out[key] = out[key].Add(r.Amount)
	}
	return out
}

// FilterCategory returns the records whose category equals the given
// identifier, applied before summation when the caller scopes to a selected
// category. CategoryAll (or an empty selector) leaves the input unchanged.
func FilterCategory(records []Record, category string) []Record {
	if category == "" || category == CategoryAll {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Aggregate computes the full aggregation of one filtered record set.
func Aggregate(records []Record) Aggregation {
	return Aggregation{
		Total:      Total(records),
		ByCategory: ByCategory(records),
		ByDay:      ByDay(records),
		Categories: DistinctCategories(records),
	}
}
