package config

import (
	"time"

	"github.com/gabapcia/solindex/internal/indexer"
	"github.com/gabapcia/solindex/internal/pkg/resilience/retry"
	"github.com/gabapcia/solindex/internal/processor"
)

// fetchRetryDelay is the initial wait between attempts of a ledger read.
const fetchRetryDelay = 500 * time.Millisecond

// Engine returns the indexer configuration described by c.
func (c Config) Engine() indexer.Config {
	var target indexer.Target
	switch indexer.Mode(c.Indexer.Mode) {
	case indexer.ModeAccount:
		target = indexer.AccountTarget{Addresses: c.Indexer.Addresses}
	case indexer.ModeTransaction:
		target = indexer.TransactionTarget{Addresses: c.Indexer.Addresses}
	case indexer.ModeProgram:
		target = indexer.ProgramTarget{ProgramID: c.Indexer.ProgramID}
	}

	return indexer.Config{
		Environment:  indexer.Environment(c.RPC.Environment),
		Target:       target,
		Endpoint:     c.RPC.Endpoint,
		PollInterval: c.Indexer.PollInterval,
		BatchSize:    c.Indexer.BatchSize,
	}
}

// EngineOptions returns the engine options for the configured processors and
// fetch retries.
func (c Config) EngineOptions() ([]indexer.Option, error) {
	processors, err := processor.ParseAll(c.Indexer.Processors)
	if err != nil {
		return nil, err
	}

	opts := []indexer.Option{indexer.WithProcessors(processors...)}
	if c.Indexer.FetchRetries > 0 {
		opts = append(opts, indexer.WithRetry(retry.New(
			retry.WithAttempts(c.Indexer.FetchRetries+1),
			retry.WithDelay(fetchRetryDelay),
		)))
	}

	return opts, nil
}
