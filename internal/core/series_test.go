package core

import "testing"

func TestLineSeriesSorted(t *testing.T) {
	byDay := map[string]Money{
		"2025-07-15": {Cents: 3000},
		"2025-07-01": {Cents: 5000},
		"2025-06-30": {Cents: 1000},
	}
	got := LineSeries(byDay)
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date >= got[i].Date {
			t.Fatalf("series not strictly ascending: %s >= %s", got[i-1].Date, got[i].Date)
		}
	}
	if got[0].Date != "2025-06-30" || got[2].Date != "2025-07-15" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestLineSeriesEmpty(t *testing.T) {
	got := LineSeries(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil series, got %#v", got)
	}
}

func TestPieSeriesLabels(t *testing.T) {
	dir := NewDirectory([]Category{
		{ID: "1", Name: "Food"},
		{ID: "2", Name: "Transport"},
	})
	byCat := []CategoryAmount{
		{Category: "1", Amount: Money{Cents: 5000}},
		{Category: "99", Amount: Money{Cents: 3000}}, // unknown id
		{Category: "", Amount: Money{Cents: 700}},    // empty category
	}
	got := PieSeries(byCat, dir)
	if len(got) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(got))
	}
	if got[0].Label != "Food" {
		t.Fatalf("slice 0 label = %q, want Food", got[0].Label)
	}
	if got[1].Label != "99" {
		t.Fatalf("unresolved id should fall back to raw identifier, got %q", got[1].Label)
	}
	if got[2].Label != UncategorizedLabel {
		t.Fatalf("empty category label = %q, want %q", got[2].Label, UncategorizedLabel)
	}

	var sliceSum, catSum Money
	for _, s := range got {
		sliceSum = sliceSum.Add(s.Amount)
	}
	for _, ca := range byCat {
		catSum = catSum.Add(ca.Amount)
	}
	if sliceSum != catSum {
		t.Fatalf("pie sum %d != byCategory sum %d", sliceSum.Cents, catSum.Cents)
	}
}

func TestAvailableMonths(t *testing.T) {
	records := []Record{
		rec("a", "2025-07-01", "1", 100),
		rec("b", "2025-08-15", "1", 100),
		rec("c", "2025-07-20", "1", 100),
		rec("d", "2024-12-31", "1", 100),
		rec("e", "", "1", 100),
	}
	got := AvailableMonths(records)
	want := []string{"2025-08", "2025-07", "2024-12"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
