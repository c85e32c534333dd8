// Package journal implements the user-facing record and category operations
// on top of a Store: strict validation on creation, category name
// uniqueness, sequential category IDs and the one-shot legacy migration
// from name-keyed records to ID-keyed ones.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"spendlog/internal/core"
)

// Service orchestrates journal operations over the configured store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AddRecord validates user input strictly and persists a new record with a
// freshly assigned ID. The leniency the aggregation engine extends to stored
// data does not apply here: bad input is rejected at the door.
func (s *Service) AddRecord(ctx context.Context, date, category, amount string) (core.Record, error) {
	d, err := core.ParseDate(date)
	if err != nil {
		return core.Record{}, err
	}
	if strings.TrimSpace(category) == "" {
		return core.Record{}, core.ErrEmptyCategory
	}
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		return core.Record{}, err
	}

	r := core.Record{
		ID:       uuid.NewString(),
		Date:     d,
		Category: strings.TrimSpace(category),
		Amount:   core.Money{Cents: cents},
	}
	if err := r.Validate(); err != nil {
		return core.Record{}, err
	}
	if err := s.store.AddRecord(ctx, r); err != nil {
		return core.Record{}, fmt.Errorf("add record: %w", err)
	}

	slog.InfoContext(ctx, "Record added",
		"id", r.ID,
		"date", r.Date.Key(),
		"category", r.Category,
		"amount_cents", r.Amount.Cents)
	return r, nil
}

// RemoveRecord deletes a record by ID.
func (s *Service) RemoveRecord(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return core.ErrEmptyRecordID
	}
	if err := s.store.RemoveRecord(ctx, id); err != nil {
		return fmt.Errorf("remove record %s: %w", id, err)
	}
	slog.InfoContext(ctx, "Record removed", "id", id)
	return nil
}

// Records returns a snapshot of all records in insertion order.
func (s *Service) Records(ctx context.Context) ([]core.Record, error) {
	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// Categories returns a snapshot of all categories in insertion order.
func (s *Service) Categories(ctx context.Context) ([]core.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// AddCategory creates a category with the next sequential ID. Names must be
// unique ignoring case; duplicates are rejected with core.ErrDuplicateName.
func (s *Service) AddCategory(ctx context.Context, name, description string) (core.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.Category{}, core.ErrEmptyName
	}

	existing, err := s.store.ListCategories(ctx)
	if err != nil {
		return core.Category{}, fmt.Errorf("list categories: %w", err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return core.Category{}, core.ErrDuplicateName
		}
	}

	c := core.Category{
		ID:          NextCategoryID(existing),
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.store.AddCategory(ctx, c); err != nil {
		return core.Category{}, fmt.Errorf("add category: %w", err)
	}

	slog.InfoContext(ctx, "Category added", "id", c.ID, "name", c.Name)
	return c, nil
}

// NextCategoryID returns max(existing numeric IDs) + 1 as text. Non-numeric
// IDs are ignored for the maximum.
func NextCategoryID(categories []core.Category) string {
	var max int64
	for _, c := range categories {
		if n, err := strconv.ParseInt(c.ID, 10, 64); err == nil && n > max {
			max = n
		}
	}
	return strconv.FormatInt(max+1, 10)
}

// MigrateLegacyCategoryNames rewrites records whose category field holds a
// category's display name instead of its ID. Old call sites stored either
// one; the ID is canonical now. A record is rewritten only when its category
// matches no existing ID but matches exactly one name ignoring case;
// anything else is left alone and keeps resolving through the raw-identifier
// fallback. Returns the number of records rewritten.
func (s *Service) MigrateLegacyCategoryNames(ctx context.Context) (int, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("list categories: %w", err)
	}
	ids := make(map[string]struct{}, len(categories))
	byName := make(map[string]string, len(categories))
	for _, c := range categories {
		ids[c.ID] = struct{}{}
		byName[strings.ToLower(c.Name)] = c.ID
	}

	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("list records: %w", err)
	}

	migrated := 0
	for _, r := range records {
		if r.Category == "" {
			continue
		}
		if _, ok := ids[r.Category]; ok {
			continue
		}
		id, ok := byName[strings.ToLower(r.Category)]
		if !ok {
			continue
		}
		r.Category = id
		if err := s.store.ReplaceRecord(ctx, r); err != nil {
			return migrated, fmt.Errorf("rewrite record %s: %w", r.ID, err)
		}
		migrated++
	}

	if migrated > 0 {
		slog.InfoContext(ctx, "Migrated legacy category names", "records", migrated)
	}
	return migrated, nil
}
