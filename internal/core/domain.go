package core

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar date with no time-of-day component, stored at UTC
	// midnight. The zero value means "no date" (legacy records may lack one).
	Date struct {
		time.Time
	}

	// Record is a single logged spending event. Records are never mutated in
	// place; an edit is a remove followed by a re-add.
	Record struct {
		ID       string `json:"id"`
		Date     Date   `json:"date"`
		Category string `json:"category"`
		Amount   Money  `json:"amount"`
	}

	// Category is a label under which spending is classified. The ID is
	// numeric-looking but treated as opaque text.
	Category struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyRecordID    = errors.New("empty record id")
	ErrEmptyName        = errors.New("empty category name")
	ErrDuplicateName    = errors.New("category name already exists")
	ErrRecordNotFound   = errors.New("record not found")
	ErrCategoryNotFound = errors.New("category not found")
)

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string. Used on the strict creation path;
// stored blobs go through UnmarshalJSON instead, which never fails.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// Day returns the day of the month.
func (d Date) Day() int { return d.Time.Day() }

// Month returns the month as 1-12.
func (d Date) Month() int { return int(d.Time.Month()) }

// Year returns the year.
func (d Date) Year() int { return d.Time.Year() }

// IsAbsent reports whether the record carried no parseable date.
func (d Date) IsAbsent() bool { return d.IsZero() }

// AddDays returns the date n days later (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// Key returns the canonical YYYY-MM-DD representation.
func (d Date) Key() string { return d.Format(dateLayout) }

// MonthKey returns the YYYY-MM representation.
func (d Date) MonthKey() string { return d.Format("2006-01") }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsAbsent() {
		return json.Marshal("")
	}
	return json.Marshal(d.Key())
}

// UnmarshalJSON is deliberately lenient: a missing or unparseable date
// decodes to the absent Date rather than failing, so one bad record never
// poisons a whole stored blob. Absent dates are excluded from date-scoped
// aggregation and kept only under the all-time window.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrEmptyRecordID
	}
	if r.Date.IsAbsent() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if r.Amount.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrCategoryNotFound
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Directory is an immutable snapshot of the category directory, used by the
// engine for label resolution only. Build a fresh one from the store before
// each query.
type Directory struct {
	byID  map[string]Category
	order []Category
}

// NewDirectory builds a Directory from a category list, preserving order.
// Later duplicates of an ID are ignored.
func NewDirectory(categories []Category) *Directory {
	dir := &Directory{byID: make(map[string]Category, len(categories))}
	for _, c := range categories {
		if _, ok := dir.byID[c.ID]; ok {
			continue
		}
		dir.byID[c.ID] = c
		dir.order = append(dir.order, c)
	}
	return dir
}

// Lookup resolves a category by ID.
func (dir *Directory) Lookup(id string) (Category, bool) {
	c, ok := dir.byID[id]
	return c, ok
}

// All returns the categories in directory order.
func (dir *Directory) All() []Category {
	out := make([]Category, len(dir.order))
	copy(out, dir.order)
	return out
}
