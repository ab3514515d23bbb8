// Package indexer implements the polling engine that indexes ledger accounts
// and transactions. A Service runs one pass immediately on Start and then one
// pass per poll interval; each pass fetches records through the RPCProvider,
// runs them through the processor Chain and saves the survivors to Storage.
package indexer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/solindex/internal/pkg/logger"
	"github.com/gabapcia/solindex/internal/pkg/resilience/retry"
	"github.com/gabapcia/solindex/internal/pkg/x/chflow"
)

// Service is the indexing engine.
type Service interface {
	// Start connects storage, runs one pass and schedules the following ones.
	// Calling Start on a running engine logs a warning and does nothing.
	Start(ctx context.Context) error

	// Stop cancels the schedule, waits for the pass in progress and
	// disconnects storage. Calling Stop on an idle engine does nothing.
	Stop(ctx context.Context) error

	// AddProcessor appends p to the processor chain. It must be called before Start.
	AddProcessor(p Processor)

	// Query forwards filter to the storage adapter.
	Query(ctx context.Context, filter Filter) ([]Record, error)

	// Cursor returns the current transaction watermark.
	Cursor() Cursor

	// IsRunning reports whether the engine is started.
	IsRunning() bool
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isRunning bool
	closeFunc closeFunc

	cfg      Config
	provider RPCProvider
	storage  Storage
	chain    Chain
	cursor   *cursorState

	retry       retry.Retry
	now         func() time.Time
	instruments instruments
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		logger.Warn(ctx, "indexer already running", "indexer.mode", s.cfg.Mode())
		return nil
	}

	if err := s.storage.Connect(ctx); err != nil {
		return fmt.Errorf("connect storage: %w", err)
	}

	s.isRunning = true
	logger.Info(ctx, "indexer started",
		"indexer.mode", s.cfg.Mode(),
		"indexer.endpoint", s.provider.Endpoint(),
		"indexer.poll_interval", s.cfg.PollInterval.String(),
	)

	passCtx := context.WithoutCancel(ctx)
	s.runPass(passCtx)

	loopCtx, cancel := context.WithCancel(passCtx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.schedule(loopCtx)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}

	return nil
}

// schedule runs one pass per tick until ctx is cancelled. Passes run in this
// goroutine, so ticks that fire during a long pass are coalesced and passes
// never overlap.
func (s *service) schedule(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, ok := chflow.Receive(ctx, ticker.C); !ok || ctx.Err() != nil {
			return
		}

		s.runPass(context.WithoutCancel(ctx))
	}
}

func (s *service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	s.isRunning = false
	if s.closeFunc != nil {
		s.closeFunc()
		s.closeFunc = nil
	}

	if err := s.storage.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect storage: %w", err)
	}

	logger.Info(ctx, "indexer stopped", "indexer.mode", s.cfg.Mode())
	return nil
}

func (s *service) AddProcessor(p Processor) {
	s.chain = append(s.chain, p)
}

func (s *service) Query(ctx context.Context, filter Filter) ([]Record, error) {
	return s.storage.Query(ctx, filter)
}

func (s *service) Cursor() Cursor {
	return s.cursor.Load()
}

func (s *service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isRunning
}

type config struct {
	retry      retry.Retry
	now        func() time.Time
	processors []Processor
}

type Option func(*config)

// New validates cfg, fills in its defaults and returns an idle engine.
func New(cfg Config, provider RPCProvider, storage Storage, opts ...Option) (*service, error) {
	cfg = cfg.withDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := config{
		retry: nil,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return &service{
		cfg:         cfg,
		provider:    provider,
		storage:     storage,
		chain:       Chain(c.processors),
		cursor:      &cursorState{},
		retry:       c.retry,
		now:         c.now,
		instruments: newInstruments(),
	}, nil
}

// WithRetry retries each ledger lookup of a pass with r before skipping it.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithProcessors registers processors at construction time.
func WithProcessors(processors ...Processor) Option {
	return func(c *config) {
		c.processors = append(c.processors, processors...)
	}
}

// WithClock overrides the clock used to timestamp account snapshots.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
