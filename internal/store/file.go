package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"spendlog/internal/core"
	"spendlog/internal/journal"
)

// blob is the stored document. The key names match the original browser
// storage layout so existing exports load unchanged.
type blob struct {
	Records    []core.Record   `json:"spendingRecords"`
	Categories []core.Category `json:"spendingCategories"`
}

// File persists records and categories as a single JSON document, loaded
// once at open and rewritten whole on every mutation. Decoding is lenient
// per core's codecs: records with garbage dates or amounts load with the
// field zeroed instead of failing the whole file.
type File struct {
	mu   sync.Mutex
	path string
	data blob
}

func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	f := &File{path: path}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fresh store
	case err != nil:
		return nil, fmt.Errorf("read store file: %w", err)
	default:
		if err := json.Unmarshal(raw, &f.data); err != nil {
			return nil, fmt.Errorf("decode store file %s: %w", path, err)
		}
	}

	if len(f.data.Categories) == 0 {
		f.data.Categories = journal.SeedCategories()
		if err := f.persist(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// persist writes the blob atomically via a temp file rename.
// Caller must hold the lock.
func (f *File) persist() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

func (f *File) ListRecords(_ context.Context) ([]core.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]core.Record(nil), f.data.Records...), nil
}

func (f *File) AddRecord(_ context.Context, r core.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Records = append(f.data.Records, r)
	return f.persist()
}

func (f *File) RemoveRecord(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.data.Records {
		if r.ID == id {
			f.data.Records = append(f.data.Records[:i], f.data.Records[i+1:]...)
			return f.persist()
		}
	}
	return core.ErrRecordNotFound
}

func (f *File) ReplaceRecord(_ context.Context, r core.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.data.Records {
		if f.data.Records[i].ID == r.ID {
			f.data.Records[i] = r
			return f.persist()
		}
	}
	return core.ErrRecordNotFound
}

func (f *File) ListCategories(_ context.Context) ([]core.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]core.Category(nil), f.data.Categories...), nil
}

func (f *File) AddCategory(_ context.Context, c core.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Categories = append(f.data.Categories, c)
	return f.persist()
}
