// Package cli exposes chainpub as a command-line application.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/chainpub/internal/relay"

	"github.com/urfave/cli/v3"
)

// RelayFactory builds a relay from the process configuration. The returned
// cleanup releases what the factory acquired and runs after the relay closed.
type RelayFactory func(ctx context.Context) (r relay.Service, cleanup func(), err error)

func newApp(newRelay RelayFactory, out io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "chainpub",
		Description:           "Relays blocks and transactions of UTXO chains to ZeroMQ subscribers.",
		Usage:                 "chainpub [command] [flags]",
		Writer:                out,
		Commands: []*cli.Command{
			startRelayCommand(newRelay),
			listenCommand(),
		},
	}
}

// Run executes the chainpub CLI with the process arguments.
//
//   - `start`: runs the relay until SIGINT or SIGTERM.
//   - `listen`: prints the frames of a running publisher.
func Run(ctx context.Context, newRelay RelayFactory) error {
	return newApp(newRelay, os.Stdout).Run(ctx, os.Args)
}
