// Package storage implements the SQLite-backed store: the client-local
// persistence the rest of the application treats as an opaque collaborator.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"spendlog/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListRecords implements journal.RecordStore. Insertion order is the
// rowid order; ReplaceRecord updates in place so it is stable across the
// legacy migration.
func (r *SQLiteRepository) ListRecords(ctx context.Context) ([]core.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, record_date, category, amount_cents FROM records ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		var (
			rec     core.Record
			dateStr string
		)
		if err := rows.Scan(&rec.ID, &dateStr, &rec.Category, &rec.Amount.Cents); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		// Lenient like the JSON codecs: a bad stored date means no date.
		if d, err := core.ParseDate(dateStr); err == nil {
			rec.Date = d
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// AddRecord implements journal.RecordStore.
func (r *SQLiteRepository) AddRecord(ctx context.Context, rec core.Record) error {
	dateStr := ""
	if !rec.Date.IsAbsent() {
		dateStr = rec.Date.Key()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO records (id, record_date, category, amount_cents) VALUES (?, ?, ?, ?)`,
		rec.ID, dateStr, rec.Category, rec.Amount.Cents)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	slog.InfoContext(ctx, "Record saved to SQLite",
		"id", rec.ID,
		"date", dateStr,
		"category", rec.Category,
		"amount_cents", rec.Amount.Cents)
	return nil
}

// RemoveRecord implements journal.RecordStore.
func (r *SQLiteRepository) RemoveRecord(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrRecordNotFound
	}
	return nil
}

// ReplaceRecord implements journal.RecordStore.
func (r *SQLiteRepository) ReplaceRecord(ctx context.Context, rec core.Record) error {
	dateStr := ""
	if !rec.Date.IsAbsent() {
		dateStr = rec.Date.Key()
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE records SET record_date = ?, category = ?, amount_cents = ? WHERE id = ?`,
		dateStr, rec.Category, rec.Amount.Cents, rec.ID)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrRecordNotFound
	}
	return nil
}

// ListCategories implements journal.CategoryStore. Numeric IDs sort
// numerically so the directory lists in creation order.
func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM categories ORDER BY CAST(id AS INTEGER), id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []core.Category
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// AddCategory implements journal.CategoryStore. The unique NOCASE index on
// name backs up the service-level duplicate check.
func (r *SQLiteRepository) AddCategory(ctx context.Context, c core.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, description) VALUES (?, ?, ?)`,
		c.ID, c.Name, c.Description)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}

	slog.InfoContext(ctx, "Category saved to SQLite", "id", c.ID, "name", c.Name)
	return nil
}
