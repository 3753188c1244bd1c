package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/chainpub/internal/chainwatch"
	"github.com/gabapcia/chainpub/internal/config"
	"github.com/gabapcia/chainpub/internal/handlers/metrics"
	"github.com/gabapcia/chainpub/internal/infra/blockchain/bitcoind"
	"github.com/gabapcia/chainpub/internal/infra/eventbus"
	"github.com/gabapcia/chainpub/internal/infra/storage/redis"
	"github.com/gabapcia/chainpub/internal/network"
	"github.com/gabapcia/chainpub/internal/pkg/logger"
	"github.com/gabapcia/chainpub/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainpub/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/chainpub/internal/pkg/transport/http"
	"github.com/gabapcia/chainpub/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/chainpub/internal/pkg/transport/zmq"
	"github.com/gabapcia/chainpub/internal/publisher"
	"github.com/gabapcia/chainpub/internal/relay"
)

// cleanupStack runs the registered functions in reverse order.
type cleanupStack []func()

func (c *cleanupStack) push(f func()) {
	*c = append(*c, f)
}

func (c cleanupStack) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

// newRelay builds the relay described by the CHAINPUB_ environment.
func newRelay(ctx context.Context) (_ relay.Service, _ func(), err error) {
	var cleanup cleanupStack
	defer func() {
		if err != nil {
			cleanup.run()
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if cfg.OTEL.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.OTEL.ServiceName)
		if err != nil {
			return nil, nil, fmt.Errorf("init telemetry: %w", err)
		}

		cleanup.push(func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()

			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "telemetry shutdown", "error", err)
			}
		})
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	cleanup.push(func() { _ = logger.Sync() })

	chainType, err := network.ParseChainType(string(cfg.ChainType))
	if err != nil {
		return nil, nil, err
	}

	provider := network.NewProvider(chainType)

	networks, err := provider.Resolve(ctx, cfg.Chains)
	if err != nil {
		return nil, nil, err
	}

	bus := eventbus.New()
	cleanup.push(bus.Close)

	watcherOpts := []chainwatch.Option{
		chainwatch.WithPollInterval(cfg.Bitcoind.PollInterval),
		chainwatch.WithMempool(cfg.Bitcoind.Mempool),
		chainwatch.WithRetry(retry.New(
			retry.WithAttempts(5),
			retry.WithDelay(500*time.Millisecond),
			retry.WithMaxDelay(5*time.Second),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Debug(ctx, "retrying node call", "attempt", attempt, "error", err)
			}),
		)),
	}

	if cfg.Redis.Addr != "" {
		checkpoints, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}

		cleanup.push(func() {
			if err := checkpoints.Close(); err != nil {
				logger.Warn(ctx, "closing checkpoint storage", "error", err)
			}
		})
		watcherOpts = append(watcherOpts, chainwatch.WithCheckpointStorage(checkpoints))
	}

	httpClient := transporthttp.NewClient(transporthttp.WithRetryPolicy(transporthttp.KeepServerErrors)).StandardClient()

	targets := make([]chainwatch.Target, 0, len(networks))
	for _, n := range networks {
		conn := jsonrpc.NewClient(httpClient, cfg.Bitcoind.NodeURL(n.Code),
			jsonrpc.WithVersion("1.0"),
			jsonrpc.WithBasicAuth(cfg.Bitcoind.RPCUser, cfg.Bitcoind.RPCPassword),
		)

		targets = append(targets, chainwatch.Target{Network: n, Client: bitcoind.NewClient(conn)})
	}

	pub := publisher.New(bus,
		zmq.NewPublisher(cfg.ZMQ.PubPort, zmq.WithSendHighWatermark(cfg.ZMQ.SendHWM)),
		provider,
		cfg.Chains,
		publisher.WithQueueCapacity(cfg.Queue.Capacity),
		publisher.WithOverflowPolicy(cfg.Queue.Overflow),
	)

	var metricsServer metrics.Server
	if cfg.Metrics.Addr != "" {
		metricsServer = metrics.New(cfg.Metrics.Addr, metrics.WithHealthCheck(func() error {
			if state := pub.State(); state != publisher.StateRunning {
				return errors.New("publisher is " + state.String())
			}

			return nil
		}))
	}

	return relay.New(pub, chainwatch.New(bus, targets, watcherOpts...), metricsServer), cleanup.run, nil
}
