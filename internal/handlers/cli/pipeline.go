package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/solindex/internal/indexer"

	"github.com/urfave/cli/v3"
)

// startCommand returns the command that runs the indexing engine.
//
// Usage example:
//
//	solindex start --wait-healthy
//
// The engine is built when the command runs. It runs until the process
// receives SIGINT or SIGTERM, or ctx is cancelled, and is then stopped gracefully.
func startCommand(newService ServiceFactory, provider indexer.RPCProvider) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the indexing engine and keeps polling until interrupted.",
		Usage:       "Runs the indexer. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "wait-healthy",
				Usage: "Block until the RPC node answers before the first pass",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if c.Bool("wait-healthy") {
				if err := provider.EnsureConnected(ctx); err != nil {
					return err
				}
			}

			if err := svc.Start(ctx); err != nil {
				return err
			}

			select {
			case <-quit:
			case <-ctx.Done():
			}

			return svc.Stop(context.WithoutCancel(ctx))
		},
	}
}
