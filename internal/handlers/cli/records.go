package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/solindex/internal/indexer"

	"github.com/urfave/cli/v3"
)

// ErrInvalidAddress is returned by check-address for malformed addresses.
var ErrInvalidAddress = errors.New("invalid address")

// queryCommand returns the command that prints stored records, one JSON
// document per line.
//
// Usage example:
//
//	solindex query --where kind=transaction --where success=true
func queryCommand(storage indexer.Storage) *cli.Command {
	return &cli.Command{
		Name:        "query",
		Description: "Prints the stored records matching every --where condition.",
		Usage:       "Queries the configured storage. Values are parsed as JSON when possible.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "where",
				Aliases: []string{"w"},
				Usage:   "Equality condition as field=value (e.g., fee=5000)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) (err error) {
			filter, err := indexer.ParseFilter(c.StringSlice("where"))
			if err != nil {
				return err
			}

			if err := storage.Connect(ctx); err != nil {
				return fmt.Errorf("connect storage: %w", err)
			}
			defer func() {
				err = errors.Join(err, storage.Disconnect(context.WithoutCancel(ctx)))
			}()

			records, err := storage.Query(ctx, filter)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			for _, r := range records {
				data, err := indexer.MarshalRecord(r)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(w, string(data)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// checkAddressCommand returns the command that validates a ledger address.
//
// Usage example:
//
//	solindex check-address TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA
func checkAddressCommand() *cli.Command {
	return &cli.Command{
		Name:        "check-address",
		Description: "Checks that an address is a base58 encoded 32-byte public key.",
		Usage:       "Validates a ledger address.",
		ArgsUsage:   "<address>",
		Action: func(ctx context.Context, c *cli.Command) error {
			address := c.Args().First()
			if !indexer.IsValidAddress(address) {
				return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
			}

			_, err := fmt.Fprintf(c.Root().Writer, "%s is valid\n", indexer.ShortenAddress(address, 8))
			return err
		},
	}
}
