// Package jsonfile implements indexer.Storage as a single JSON file. The file
// is read on Connect and rewritten after every Save and on Disconnect.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/gabapcia/solindex/internal/indexer"
)

// DefaultPath is the file used when none is configured.
const DefaultPath = "./solindex-data.json"

type storage struct {
	mu      sync.Mutex
	path    string
	records []indexer.Record
}

var _ indexer.Storage = (*storage)(nil)

// Connect loads the records already in the file. A missing file is an empty store.
func (s *storage) Connect(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := load(s.path)
	if err != nil {
		return err
	}

	s.records = records
	return nil
}

func (s *storage) Disconnect(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.flush(s.records)
}

// Save keeps records only once they are on disk, so a failed write leaves
// the store as it was.
func (s *storage) Save(_ context.Context, records ...indexer.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clip(s.records), records...)
	if err := s.flush(next); err != nil {
		return err
	}

	s.records = next
	return nil
}

func (s *storage) Query(_ context.Context, filter indexer.Filter) ([]indexer.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return filter.Apply(slices.Clone(s.records)), nil
}

func load(path string) ([]indexer.Record, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	records := make([]indexer.Record, len(entries))
	for i, entry := range entries {
		r, err := indexer.UnmarshalRecord(entry)
		if err != nil {
			return nil, fmt.Errorf("decode %s entry %d: %w", path, i, err)
		}
		records[i] = r
	}

	return records, nil
}

// flush replaces the file with records. The new content is written next to
// it and renamed into place.
func (s *storage) flush(records []indexer.Record) error {
	entries := make([]json.RawMessage, len(records))
	for i, r := range records {
		data, err := indexer.MarshalRecord(r)
		if err != nil {
			return fmt.Errorf("encode %s record: %w", r.Kind(), err)
		}
		entries[i] = data
	}

	content, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// New creates a file storage at path, or DefaultPath when path is empty.
func New(path string) (*storage, error) {
	if path == "" {
		path = DefaultPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &storage{path: abs}, nil
}
