// Package postgres implements indexer.Storage on PostgreSQL. Transactions and
// accounts live in their own tables and are upserted by signature and address.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/solindex/internal/indexer"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotConnected is returned by Save and Query before Connect succeeds.
var ErrNotConnected = errors.New("postgres storage not connected")

type storage struct {
	mu   sync.RWMutex
	pool *pgxpool.Pool
	dsn  string
}

var _ indexer.Storage = (*storage)(nil)

func (s *storage) connection() (*pgxpool.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pool == nil {
		return nil, ErrNotConnected
	}
	return s.pool, nil
}

// Connect opens the pool and creates the tables and indexes when missing.
func (s *storage) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool != nil {
		return nil
	}

	pool, err := pgxpool.New(ctx, s.dsn)
	if err != nil {
		return err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return err
	}

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	s.pool = pool
	return nil
}

func (s *storage) Disconnect(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
	return nil
}

// Save upserts every record in a single batch.
func (s *storage) Save(ctx context.Context, records ...indexer.Record) error {
	pool, err := s.connection()
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		switch r := r.(type) {
		case *indexer.IndexedTransaction:
			args, err := transactionArgs(r)
			if err != nil {
				return fmt.Errorf("encode transaction %s: %w", r.Signature, err)
			}
			batch.Queue(upsertTransaction, args...)
		case *indexer.IndexedAccount:
			batch.Queue(upsertAccount, accountArgs(r)...)
		}
	}

	if batch.Len() == 0 {
		return nil
	}

	return pool.SendBatch(ctx, batch).Close()
}

func (s *storage) Query(ctx context.Context, filter indexer.Filter) ([]indexer.Record, error) {
	pool, err := s.connection()
	if err != nil {
		return nil, err
	}

	kind, query, args, err := buildQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	scan := scanTransaction
	if kind == indexer.KindAccount {
		scan = scanAccount
	}

	return pgx.CollectRows(rows, scan)
}

// New creates a PostgreSQL storage for dsn. The pool is opened by Connect.
func New(dsn string) *storage {
	return &storage{dsn: dsn}
}
