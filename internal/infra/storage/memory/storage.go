// Package memory implements an in-process indexer.Storage. Records live for
// the lifetime of the process and are shared across Start/Stop cycles.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/gabapcia/solindex/internal/indexer"
)

type storage struct {
	mu      sync.RWMutex
	records []indexer.Record
}

var _ indexer.Storage = (*storage)(nil)

func (s *storage) Connect(context.Context) error {
	return nil
}

func (s *storage) Disconnect(context.Context) error {
	return nil
}

func (s *storage) Save(_ context.Context, records ...indexer.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, records...)
	return nil
}

// Query returns the matching records in insertion order.
func (s *storage) Query(_ context.Context, filter indexer.Filter) ([]indexer.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter.Apply(slices.Clone(s.records)), nil
}

// Len returns the number of stored records.
func (s *storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

func New() *storage {
	return &storage{}
}
