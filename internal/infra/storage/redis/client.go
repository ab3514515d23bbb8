// Package redis implements indexer.Storage on top of Redis. In list mode
// records are pushed to a list and queried back with in-process filtering; in
// publish mode they are published to a channel and nothing is kept.
package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gabapcia/solindex/internal/indexer"
	"github.com/gabapcia/solindex/internal/pkg/logger"

	redis "github.com/redis/go-redis/v9"
)

// DefaultKey is the list key or channel name used when none is configured.
const DefaultKey = "solindex-events"

var (
	// ErrNotConnected is returned by Save and Query before Connect succeeds.
	ErrNotConnected = errors.New("redis storage not connected")

	// ErrUnknownMode is returned by NewClient for modes other than list and publish.
	ErrUnknownMode = errors.New("unknown redis storage mode")
)

// Mode selects how records are written.
type Mode string

const (
	ModeList    Mode = "list"
	ModePublish Mode = "publish"
)

type client struct {
	mu   sync.RWMutex
	conn *redis.Client

	options *redis.Options
	mode    Mode
	key     string
}

var _ indexer.Storage = (*client)(nil)

func (c *client) connection() (*redis.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.conn == nil {
		return nil, ErrNotConnected
	}
	return c.conn, nil
}

// Connect opens the connection and pings the server.
func (c *client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	conn := redis.NewClient(c.options)
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return err
	}

	c.conn = conn
	return nil
}

func (c *client) Disconnect(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *client) Save(ctx context.Context, records ...indexer.Record) error {
	conn, err := c.connection()
	if err != nil {
		return err
	}

	payloads := make([]any, len(records))
	for i, r := range records {
		data, err := indexer.MarshalRecord(r)
		if err != nil {
			return fmt.Errorf("encode %s record: %w", r.Kind(), err)
		}
		payloads[i] = data
	}

	_, err = conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, payload := range payloads {
			if c.mode == ModePublish {
				pipe.Publish(ctx, c.key, payload)
			} else {
				pipe.LPush(ctx, c.key, payload)
			}
		}
		return nil
	})
	return err
}

// Query reads the whole list and filters it in process, oldest record first.
// Entries that cannot be decoded are skipped. In publish mode nothing is
// stored, so Query always returns an empty result.
func (c *client) Query(ctx context.Context, filter indexer.Filter) ([]indexer.Record, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}

	if c.mode == ModePublish {
		return []indexer.Record{}, nil
	}

	entries, err := conn.LRange(ctx, c.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	// LPUSH keeps the newest entry at the head.
	slices.Reverse(entries)

	records := make([]indexer.Record, 0, len(entries))
	for _, entry := range entries {
		r, err := indexer.UnmarshalRecord([]byte(entry))
		if err != nil {
			logger.Warn(ctx, "skipping malformed record", "redis.key", c.key, "error", err)
			continue
		}
		records = append(records, r)
	}

	return filter.Apply(records), nil
}

type config struct {
	mode Mode
	key  string
}

type Option func(*config)

// NewClient creates a Redis storage adapter. The connection is opened by Connect.
func NewClient(addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		mode: ModeList,
		key:  DefaultKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.mode != ModeList && cfg.mode != ModePublish {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.mode)
	}

	return &client{
		options: &redis.Options{
			Addr:     addr,
			Username: username,
			Password: password,
			DB:       db,
		},
		mode: cfg.mode,
		key:  cfg.key,
	}, nil
}

// WithMode selects list or publish mode. Empty keeps ModeList.
func WithMode(mode Mode) Option {
	return func(c *config) {
		if mode != "" {
			c.mode = mode
		}
	}
}

// WithKey sets the list key or channel name. Empty keeps DefaultKey.
func WithKey(key string) Option {
	return func(c *config) {
		if key != "" {
			c.key = key
		}
	}
}
