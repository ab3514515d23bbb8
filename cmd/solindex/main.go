package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/solindex/internal/config"
	"github.com/gabapcia/solindex/internal/handlers/cli"
	"github.com/gabapcia/solindex/internal/indexer"
	"github.com/gabapcia/solindex/internal/infra/blockchain/solana"
	"github.com/gabapcia/solindex/internal/pkg/logger"
	"github.com/gabapcia/solindex/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/solindex/internal/pkg/transport/http"
)

// configFileEnv names the variable holding the optional YAML configuration file.
const configFileEnv = "SOLINDEX_CONFIG_FILE"

// shutdownTimeout bounds the telemetry flush on exit.
const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(os.Getenv(configFileEnv))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			_ = shutdown(ctx)
		}()
	}

	var logOpts []logger.Option
	if cfg.Log.File != "" {
		logOpts = append(logOpts, logger.WithFile(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups))
	}
	if err := logger.Init(cfg.Log.Level, logOpts...); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	httpOpts := []transporthttp.Option{
		transporthttp.WithTimeout(cfg.RPC.Timeout),
		transporthttp.WithRetryMax(cfg.RPC.RetryMax),
	}
	if cfg.RPC.RateLimit > 0 {
		httpOpts = append(httpOpts, transporthttp.WithRateLimit(cfg.RPC.RateLimit, cfg.RPC.Burst))
	}

	provider, err := solana.NewProvider(indexer.Environment(cfg.RPC.Environment), cfg.RPC.Endpoint, solana.WithHTTPOptions(httpOpts...))
	if err != nil {
		return fmt.Errorf("create rpc provider: %w", err)
	}

	storage, err := cfg.Storage.NewStorage()
	if err != nil {
		return fmt.Errorf("create storage: %w", err)
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		return fmt.Errorf("build processors: %w", err)
	}

	newService := func() (indexer.Service, error) {
		svc, err := indexer.New(cfg.Engine(), provider, storage, opts...)
		if err != nil {
			return nil, fmt.Errorf("create indexer: %w", err)
		}
		return svc, nil
	}

	return cli.Run(ctx, newService, provider, storage)
}
