package cli

import (
	"context"
	"os"

	"github.com/gabapcia/solindex/internal/indexer"

	"github.com/urfave/cli/v3"
)

// ServiceFactory builds the indexing engine. It is only called by commands
// that run the engine, so an incomplete indexing target does not affect the others.
type ServiceFactory func() (indexer.Service, error)

// Run builds the solindex command line and executes it with os.Args.
//
// Commands:
//
//   - `start`: runs the indexing engine until SIGINT or SIGTERM.
//   - `query`: prints the stored records matching a filter.
//   - `check-address`: validates a ledger address.
func Run(ctx context.Context, newService ServiceFactory, provider indexer.RPCProvider, storage indexer.Storage) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "solindex",
		Description:           "Polls a Solana cluster and indexes accounts and transactions into the configured storage.",
		Usage:                 "solindex [command] [flags]",
		Commands: []*cli.Command{
			startCommand(newService, provider),
			queryCommand(storage),
			checkAddressCommand(),
		},
	}

	return app.Run(ctx, os.Args)
}
