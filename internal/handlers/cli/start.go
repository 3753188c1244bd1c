package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/chainpub/internal/pkg/logger"
)

// startRelayCommand runs the relay until an interrupt, a termination signal
// or the cancellation of the context.
//
//	chainpub start
func startRelayCommand(newRelay RelayFactory) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the chain watchers and the ZeroMQ publisher configured by the CHAINPUB_ environment.",
		Usage:       "Runs the relay. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			r, cleanup, err := newRelay(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := r.Start(ctx); err != nil {
				return err
			}
			defer r.Close()

			select {
			case sig := <-quit:
				logger.Info(ctx, "shutting down", "signal", sig.String())
			case <-ctx.Done():
				logger.Info(ctx, "shutting down", "error", ctx.Err())
			}

			return nil
		},
	}
}
