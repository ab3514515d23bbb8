package solana

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/solindex/internal/indexer"
	"github.com/gabapcia/solindex/internal/pkg/logger"
	"github.com/gabapcia/solindex/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/solindex/internal/pkg/transport/http"
	"github.com/gabapcia/solindex/internal/pkg/transport/jsonrpc"

	"github.com/blocto/solana-go-sdk/rpc"
)

const (
	// baseReconnectDelay is doubled after every failed health probe.
	baseReconnectDelay = time.Second

	// maxReconnectDelay caps the wait between health probes.
	maxReconnectDelay = 30 * time.Second
)

// ErrUnknownEnvironment is returned when no endpoint is known for an environment.
var ErrUnknownEnvironment = errors.New("unknown environment")

var endpoints = map[indexer.Environment]string{
	indexer.Mainnet:  rpc.MainnetRPCEndpoint,
	indexer.Devnet:   rpc.DevnetRPCEndpoint,
	indexer.Testnet:  rpc.TestnetRPCEndpoint,
	indexer.Localnet: rpc.LocalnetRPCEndpoint,
}

// ResolveEndpoint returns override when set, and the well-known endpoint of env otherwise.
func ResolveEndpoint(env indexer.Environment, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	endpoint, ok := endpoints[env]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
	}
	return endpoint, nil
}

// ReconnectDelay returns the wait after the given number of consecutive
// failed health probes: 2s, 4s, 8s and so on, capped at 30s.
func ReconnectDelay(failures uint) time.Duration {
	if failures >= 5 {
		return maxReconnectDelay
	}
	return min(baseReconnectDelay<<failures, maxReconnectDelay)
}

// DialFunc creates a ledger handle for endpoint.
type DialFunc func(endpoint string) (indexer.Ledger, error)

// provider implements indexer.RPCProvider. The ledger handle is replaced
// after every failed health probe.
type provider struct {
	mu   sync.RWMutex
	conn indexer.Ledger

	endpoint string
	dial     DialFunc
	timer    retry.Timer
}

var _ indexer.RPCProvider = (*provider)(nil)

func (p *provider) Connection() indexer.Ledger {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.conn
}

func (p *provider) Endpoint() string {
	return p.endpoint
}

// EnsureConnected probes the node with getVersion until it answers. Failed
// probes are retried without limit; a cancelled ctx ends the wait with ctx.Err().
func (p *provider) EnsureConnected(ctx context.Context) error {
	opts := []retry.Option{
		retry.WithAttempts(0),
		retry.WithDelayFunc(ReconnectDelay),
		retry.WithOnRetry(func(failures uint, err error) {
			logger.Warn(ctx, "ledger health check failed, reconnecting",
				"rpc.endpoint", p.endpoint,
				"rpc.failures", failures,
				"rpc.retry_in", ReconnectDelay(failures).String(),
				"error", err,
			)
			p.reconnect(ctx)
		}),
	}
	if p.timer != nil {
		opts = append(opts, retry.WithTimer(p.timer))
	}

	return retry.New(opts...).Execute(ctx, func() error {
		version, err := p.Connection().GetVersion(ctx)
		if err != nil {
			return err
		}

		logger.Debug(ctx, "ledger reachable", "rpc.endpoint", p.endpoint, "rpc.version", version)
		return nil
	})
}

// reconnect replaces the ledger handle. A failed dial keeps the previous handle.
func (p *provider) reconnect(ctx context.Context) {
	conn, err := p.dial(p.endpoint)
	if err != nil {
		logger.Debug(ctx, "ledger redial failed, keeping previous handle", "rpc.endpoint", p.endpoint, "error", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.conn = conn
}

type config struct {
	httpOptions []transporthttp.Option
	dial        DialFunc
	timer       retry.Timer
}

type Option func(*config)

// NewProvider resolves the endpoint of env, unless override is set, and dials it.
func NewProvider(env indexer.Environment, override string, opts ...Option) (*provider, error) {
	endpoint, err := ResolveEndpoint(env, override)
	if err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.dial == nil {
		httpOptions := cfg.httpOptions
		cfg.dial = func(endpoint string) (indexer.Ledger, error) {
			return NewClient(jsonrpc.NewClient(endpoint, transporthttp.NewClient(httpOptions...))), nil
		}
	}

	conn, err := cfg.dial(endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	return &provider{
		conn:     conn,
		endpoint: endpoint,
		dial:     cfg.dial,
		timer:    cfg.timer,
	}, nil
}

// WithHTTPOptions configures the HTTP client of every dialed handle.
func WithHTTPOptions(opts ...transporthttp.Option) Option {
	return func(c *config) {
		c.httpOptions = append(c.httpOptions, opts...)
	}
}

// WithDialer replaces the default JSON-RPC dialer.
func WithDialer(dial DialFunc) Option {
	return func(c *config) {
		c.dial = dial
	}
}

// WithTimer overrides the timer used to wait between health probes.
func WithTimer(t retry.Timer) Option {
	return func(c *config) {
		c.timer = t
	}
}
