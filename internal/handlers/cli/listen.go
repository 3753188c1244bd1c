package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/chainpub/internal/pkg/transport/zmq"
	"github.com/gabapcia/chainpub/internal/pkg/validator"
	"github.com/gabapcia/chainpub/internal/publisher"
)

// subscriptionPrefixes returns the frame prefixes matching the selected wire
// networks and topics. No selection on either side matches everything on it.
func subscriptionPrefixes(networks, topics []string) ([]string, error) {
	selected := make([]publisher.Topic, 0, len(topics))
	for _, t := range topics {
		topic := publisher.Topic(strings.ToUpper(t))
		if topic != publisher.TopicBlock && topic != publisher.TopicTransaction {
			return nil, fmt.Errorf("%w: %q", publisher.ErrUnknownTopic, t)
		}

		selected = append(selected, topic)
	}

	if len(networks) == 0 {
		if len(selected) == 0 {
			return nil, nil
		}

		return nil, errors.New("--topic requires at least one --network")
	}

	var prefixes []string
	for _, n := range networks {
		n = strings.ToUpper(n)
		if !strings.HasPrefix(n, "NETWORK_") {
			n = "NETWORK_" + n
		}

		if len(selected) == 0 {
			prefixes = append(prefixes, n+"|")
			continue
		}

		for _, topic := range selected {
			prefixes = append(prefixes, publisher.TopicPrefix(n, topic))
		}
	}

	return prefixes, nil
}

// listenCommand subscribes to a publisher and prints every frame received,
// one per line.
//
//	chainpub listen --endpoint tcp://127.0.0.1:2000 --network btc --topic block
func listenCommand() *cli.Command {
	return &cli.Command{
		Name:        "listen",
		Description: "Subscribes to a chainpub publisher and prints the frames it receives.",
		Usage:       "Prints published frames. Stops on Ctrl+C or after --count frames.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "ZeroMQ endpoint of the publisher",
				Value: "tcp://127.0.0.1:2000",
			},
			&cli.StringSliceFlag{
				Name:  "network",
				Usage: "Chain code or wire network to receive (e.g., btc, NETWORK_LTC). Repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "topic",
				Usage: "Topic to receive: block or transaction. Repeatable",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Exit after receiving this many frames (0 = never)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			endpoint := c.String("endpoint")
			if err := validator.Var(endpoint, "required,url"); err != nil {
				return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
			}

			prefixes, err := subscriptionPrefixes(c.StringSlice("network"), c.StringSlice("topic"))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			sub := zmq.NewSubscriber(ctx)
			defer sub.Close()

			if err := sub.Dial(endpoint, prefixes...); err != nil {
				return fmt.Errorf("dial %s: %w", endpoint, err)
			}

			count := c.Int("count")
			for received := 0; count <= 0 || received < count; received++ {
				frame, err := sub.Recv()
				if err != nil {
					if ctx.Err() != nil {
						return nil
					}

					return err
				}

				fmt.Fprintln(c.Root().Writer, frame)
			}

			return nil
		},
	}
}
