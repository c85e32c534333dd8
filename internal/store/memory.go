// Package store provides the client-local persistence backends for records
// and categories: an in-memory store for tests and a JSON file store
// mirroring the single-blob layout the data originally lived in.
package store

import (
	"context"
	"sync"

	"spendlog/internal/core"
	"spendlog/internal/journal"
)

// Memory is an in-memory store. When created without categories it seeds
// the bundled reference dataset, like every other backend.
type Memory struct {
	mu         sync.Mutex
	records    []core.Record
	categories []core.Category
}

func NewMemory(categories []core.Category) *Memory {
	if len(categories) == 0 {
		categories = journal.SeedCategories()
	}
	return &Memory{categories: append([]core.Category(nil), categories...)}
}

func (m *Memory) ListRecords(_ context.Context) ([]core.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Record(nil), m.records...), nil
}

func (m *Memory) AddRecord(_ context.Context, r core.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

func (m *Memory) RemoveRecord(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return core.ErrRecordNotFound
}

func (m *Memory) ReplaceRecord(_ context.Context, r core.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == r.ID {
			m.records[i] = r
			return nil
		}
	}
	return core.ErrRecordNotFound
}

func (m *Memory) ListCategories(_ context.Context) ([]core.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Category(nil), m.categories...), nil
}

func (m *Memory) AddCategory(_ context.Context, c core.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, c)
	return nil
}
