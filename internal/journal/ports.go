package journal

import (
	"context"

	"spendlog/internal/core"
)

// Ports for the stores backing the journal. The engine itself never touches
// these; it only sees the snapshots handed to it per call.
type (
	RecordStore interface {
		// ListRecords returns all records in insertion order.
		ListRecords(ctx context.Context) ([]core.Record, error)
		AddRecord(ctx context.Context, r core.Record) error
		RemoveRecord(ctx context.Context, id string) error
		// ReplaceRecord swaps the stored record with the same ID. Only the
		// legacy category migration uses this; user edits are remove + re-add.
		ReplaceRecord(ctx context.Context, r core.Record) error
	}

	CategoryStore interface {
		// ListCategories returns all categories in insertion order.
		ListCategories(ctx context.Context) ([]core.Category, error)
		AddCategory(ctx context.Context, c core.Category) error
	}

	// Store is the full persistence surface a backend provides.
	Store interface {
		RecordStore
		CategoryStore
	}
)
