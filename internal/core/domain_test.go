package core

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-07-01")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2025 || d.Month() != 7 || d.Day() != 1 {
		t.Fatalf("unexpected date: %v", d)
	}
	for _, bad := range []string{"", "not-a-date", "2025-13-01", "01/07/2025"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDateUnmarshalLenient(t *testing.T) {
	cases := []struct {
		in     string
		absent bool
	}{
		{`"2025-07-01"`, false},
		{`"garbage"`, true},
		{`""`, true},
		{`null`, true},
		{`42`, true},
	}
	for i, tc := range cases {
		var d Date
		if err := json.Unmarshal([]byte(tc.in), &d); err != nil {
			t.Fatalf("case %d (%s): unexpected error %v", i, tc.in, err)
		}
		if d.IsAbsent() != tc.absent {
			t.Fatalf("case %d (%s): absent = %v, want %v", i, tc.in, d.IsAbsent(), tc.absent)
		}
	}
}

func TestRecordValidate(t *testing.T) {
	good := Record{ID: "r1", Date: NewDate(2025, 7, 1), Category: "1", Amount: Money{Cents: 100}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bads := []Record{
		{ID: "", Date: NewDate(2025, 7, 1), Category: "1", Amount: Money{Cents: 1}},
		{ID: "r", Date: Date{}, Category: "1", Amount: Money{Cents: 1}},
		{ID: "r", Date: NewDate(2025, 7, 1), Category: "", Amount: Money{Cents: 1}},
		{ID: "r", Date: NewDate(2025, 7, 1), Category: "1", Amount: Money{Cents: -1}},
	}
	for i, r := range bads {
		if err := r.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestRecordJSONRoundTrip(t *testing.T) {
	in := Record{ID: "r1", Date: NewDate(2025, 7, 1), Category: "food", Amount: Money{Cents: 1234}}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Record
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != in.ID || !out.Date.Equal(in.Date.Time) || out.Category != in.Category || out.Amount != in.Amount {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestDirectory(t *testing.T) {
	dir := NewDirectory([]Category{
		{ID: "1", Name: "Food"},
		{ID: "2", Name: "Transport"},
		{ID: "1", Name: "Duplicate"}, // later duplicate ignored
	})
	if c, ok := dir.Lookup("1"); !ok || c.Name != "Food" {
		t.Fatalf("lookup 1: got %+v, ok=%v", c, ok)
	}
	if _, ok := dir.Lookup("99"); ok {
		t.Fatal("lookup of unknown id should fail")
	}
	all := dir.All()
	if len(all) != 2 || all[0].ID != "1" || all[1].ID != "2" {
		t.Fatalf("unexpected All(): %+v", all)
	}
}
