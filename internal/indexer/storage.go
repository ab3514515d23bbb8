package indexer

import "context"

// Storage persists the records that survive the processor chain.
// Errors are returned to the engine as is; writes are never retried.
type Storage interface {
	// Connect acquires the resources the adapter needs.
	Connect(ctx context.Context) error

	// Disconnect releases them. The engine calls it once per Stop.
	Disconnect(ctx context.Context) error

	// Save persists the given records. The engine saves one record per call.
	Save(ctx context.Context, records ...Record) error

	// Query returns every stored record matching filter.
	Query(ctx context.Context, filter Filter) ([]Record, error)
}
