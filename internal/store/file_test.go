package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"spendlog/internal/core"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlog.json")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	cats, err := f.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 8 {
		t.Fatalf("seeded categories = %d, want 8", len(cats))
	}

	r := core.Record{ID: "a", Date: core.NewDate(2025, 7, 1), Category: "1", Amount: core.Money{Cents: 8000}}
	if err := f.AddRecord(context.Background(), r); err != nil {
		t.Fatalf("add record: %v", err)
	}

	// Reopen and verify the record survived.
	f2, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	records, err := f2.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0] != r {
		t.Fatalf("record = %+v, want %+v", records[0], r)
	}

	cats2, err := f2.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories after reopen: %v", err)
	}
	if len(cats2) != 8 {
		t.Fatalf("categories after reopen = %d", len(cats2))
	}
}

func TestFileLoadsLegacyBlobLeniently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlog.json")
	legacy := `{
		"spendingRecords": [
			{"id": "ok", "date": "2025-07-01", "category": "1", "amount": 80},
			{"id": "bad-date", "date": "garbage", "category": "1", "amount": 10},
			{"id": "bad-amount", "date": "2025-07-02", "category": "2", "amount": "abc"}
		],
		"spendingCategories": [
			{"id": "1", "name": "Food"},
			{"id": "2", "name": "Transport"}
		]
	}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	records, err := f.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want all 3 kept", len(records))
	}
	if !records[1].Date.IsAbsent() {
		t.Fatal("garbage date should decode to absent")
	}
	if records[2].Amount.Cents != 0 {
		t.Fatalf("garbage amount cents = %d, want 0", records[2].Amount.Cents)
	}

	// Existing categories are kept, not reseeded.
	cats, err := f.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("categories = %d, want 2", len(cats))
	}
}

func TestFileRemoveRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlog.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	r := core.Record{ID: "x", Date: core.NewDate(2025, 7, 1), Category: "1"}
	if err := f.AddRecord(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if err := f.RemoveRecord(context.Background(), "x"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := f.RemoveRecord(context.Background(), "x"); !errors.Is(err, core.ErrRecordNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory(nil)

	cats, err := m.ListCategories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 8 {
		t.Fatalf("seeded categories = %d, want 8", len(cats))
	}

	r := core.Record{ID: "a", Date: core.NewDate(2025, 7, 1), Category: "1", Amount: core.Money{Cents: 100}}
	if err := m.AddRecord(context.Background(), r); err != nil {
		t.Fatal(err)
	}

	records, err := m.ListRecords(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0] != r {
		t.Fatalf("records = %+v", records)
	}

	// The returned slice is a copy.
	records[0].Category = "mutated"
	again, _ := m.ListRecords(context.Background())
	if again[0].Category != "1" {
		t.Fatal("list must return a copy")
	}

	r.Category = "2"
	if err := m.ReplaceRecord(context.Background(), r); err != nil {
		t.Fatalf("replace: %v", err)
	}
	again, _ = m.ListRecords(context.Background())
	if again[0].Category != "2" {
		t.Fatalf("category after replace = %q", again[0].Category)
	}

	if err := m.RemoveRecord(context.Background(), "missing"); !errors.Is(err, core.ErrRecordNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
