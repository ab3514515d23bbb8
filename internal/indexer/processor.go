package indexer

import (
	"context"
	"errors"
	"fmt"
)

// ErrDrop is returned by a Processor to discard the record. Later processors
// are skipped and the record is never persisted.
var ErrDrop = errors.New("record dropped")

// ProcessorContext is handed to every processor invocation.
type ProcessorContext struct {
	Connection Ledger // live ledger handle
	Config     Config // copy of the engine configuration
}

// Processor transforms a record before it is stored. Returning ErrDrop, or a
// nil record with a nil error, drops it. Any other error skips the record.
type Processor func(ctx context.Context, record Record, pctx ProcessorContext) (Record, error)

// Chain is an ordered list of processors.
type Chain []Processor

// Run applies the processors in order, stopping at the first one that drops
// or fails. A dropped record yields ErrDrop.
func (c Chain) Run(ctx context.Context, record Record, pctx ProcessorContext) (Record, error) {
	for i, process := range c {
		next, err := process(ctx, record, pctx)
		if errors.Is(err, ErrDrop) {
			return nil, ErrDrop
		}
		if err != nil {
			return nil, fmt.Errorf("processor %d: %w", i, err)
		}
		if next == nil {
			return nil, ErrDrop
		}
		record = next
	}
	return record, nil
}
