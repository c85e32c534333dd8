package core

import (
	"encoding/json"
	"testing"
)

func TestTotalEmpty(t *testing.T) {
	if got := Total(nil); got.Cents != 0 {
		t.Fatalf("empty total = %d cents, want 0", got.Cents)
	}
}

func TestMonthlyAggregationScenario(t *testing.T) {
	records := []Record{
		rec("a", "2025-07-01", "food", 5000),
		rec("b", "2025-07-15", "transport", 3000),
		rec("c", "2025-08-01", "food", 2000),
	}

	july := Filter(records, MonthOf(2025, 7))
	if got := Total(july); got.Cents != 8000 {
		t.Fatalf("july total = %d cents, want 8000", got.Cents)
	}
	byCat := ByCategory(july)
	if len(byCat) != 2 {
		t.Fatalf("july categories = %d, want 2", len(byCat))
	}
	if byCat[0].Category != "food" || byCat[0].Amount.Cents != 5000 {
		t.Fatalf("unexpected first category: %+v", byCat[0])
	}
	if byCat[1].Category != "transport" || byCat[1].Amount.Cents != 3000 {
		t.Fatalf("unexpected second category: %+v", byCat[1])
	}

	august := Filter(records, MonthOf(2025, 8))
	if got := Total(august); got.Cents != 2000 {
		t.Fatalf("august total = %d cents, want 2000", got.Cents)
	}
}

func TestTotalOfAllWindowEqualsTotal(t *testing.T) {
	records := []Record{
		rec("a", "2025-07-01", "food", 123),
		rec("b", "", "transport", 456),
		rec("c", "2025-09-09", "", 789),
	}
	if got, want := Total(Filter(records, AllTime())), Total(records); got != want {
		t.Fatalf("total(filter(all)) = %d, total = %d", got.Cents, want.Cents)
	}
}

func TestByCategorySumEqualsTotal(t *testing.T) {
	records := []Record{
		rec("a", "2025-07-01", "food", 5000),
		rec("b", "2025-07-02", "transport", 3000),
		rec("c", "2025-07-03", "food", 1500),
		rec("d", "2025-07-04", "", 250), // empty category still accumulates
	}
	var sum Money
	for _, ca := range ByCategory(records) {
		sum = sum.Add(ca.Amount)
	}
	if want := Total(records); sum != want {
		t.Fatalf("byCategory sum = %d, total = %d", sum.Cents, want.Cents)
	}
}

func TestByDay(t *testing.T) {
	records := []Record{
		rec("a", "2025-07-01", "food", 5000),
		rec("b", "2025-07-01", "transport", 3000),
		rec("c", "2025-07-02", "food", 2000),
		rec("d", "", "food", 9999), // skipped: no date
	}
	byDay := ByDay(records)
	if len(byDay) != 2 {
		t.Fatalf("expected 2 day keys, got %d", len(byDay))
	}
	if byDay["2025-07-01"].Cents != 8000 {
		t.Fatalf("2025-07-01 = %d cents, want 8000", byDay["2025-07-01"].Cents)
	}
	if byDay["2025-07-02"].Cents != 2000 {
		t.Fatalf("2025-07-02 = %d cents, want 2000", byDay["2025-07-02"].Cents)
	}
}

func TestFilterCategory(t *testing.T) {
	records := []Record{
		rec("a", "2025-07-01", "food", 5000),
		rec("b", "2025-07-02", "transport", 3000),
	}
	scoped := FilterCategory(records, "food")
	if len(scoped) != 1 || scoped[0].ID != "a" {
		t.Fatalf("unexpected scoped records: %+v", scoped)
	}
	if got := FilterCategory(records, CategoryAll); len(got) != 2 {
		t.Fatalf("CategoryAll should not filter, got %d records", len(got))
	}
	if got := FilterCategory(records, ""); len(got) != 2 {
		t.Fatalf("empty selector should not filter, got %d records", len(got))
	}
}

func TestMalformedAmountContributesZero(t *testing.T) {
	blob := `[
		{"id":"a","date":"2025-07-01","category":"food","amount":50},
		{"id":"b","date":"2025-07-02","category":"food","amount":"abc"},
		{"id":"c","date":"2025-07-03","category":"transport","amount":"30"}
	]`
	var records []Record
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		t.Fatalf("decode blob: %v", err)
	}
	if got := Total(records); got.Cents != 8000 {
		t.Fatalf("total = %d cents, want 8000 (garbage amount counts as zero)", got.Cents)
	}
	byCat := ByCategory(records)
	if len(byCat) != 2 {
		t.Fatalf("expected aggregation to survive the bad record, got %+v", byCat)
	}
}

func TestAggregate(t *testing.T) {
	records := []Record{
		rec("a", "2025-07-01", "food", 5000),
		rec("b", "2025-07-15", "transport", 3000),
	}
	agg := Aggregate(records)
	if agg.Total.Cents != 8000 {
		t.Fatalf("total = %d, want 8000", agg.Total.Cents)
	}
	if len(agg.ByCategory) != 2 || len(agg.ByDay) != 2 || len(agg.Categories) != 2 {
		t.Fatalf("unexpected aggregation: %+v", agg)
	}
}
