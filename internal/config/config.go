// Package config loads the chainpub settings from the environment.
//
// Every variable is prefixed with CHAINPUB_ (e.g., CHAINPUB_ZMQ_PUB_PORT). A
// .env file in the working directory is read first when present; variables
// already set in the environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/chainpub/internal/network"
	"github.com/gabapcia/chainpub/internal/pkg/validator"
	"github.com/gabapcia/chainpub/internal/pkg/x/queue"
)

// Prefix is prepended to every environment variable name.
const Prefix = "CHAINPUB"

type (
	// ZMQ configures the PUB socket.
	ZMQ struct {
		PubPort int `envconfig:"PUB_PORT" default:"2000" validate:"min=1,max=65535"`
		SendHWM int `envconfig:"SEND_HWM" default:"50000" validate:"min=1"`
	}

	// Queue configures the buffer between the event bus and the publisher.
	Queue struct {
		Capacity int                  `envconfig:"CAPACITY" default:"100000" validate:"min=0"`
		Overflow queue.OverflowPolicy `envconfig:"OVERFLOW" default:"drop_newest" validate:"oneof=drop_newest drop_oldest"`
	}

	// Bitcoind configures the nodes polled by chainwatch.
	Bitcoind struct {
		// RPCURL serves every chain without an entry in Nodes.
		RPCURL       string            `envconfig:"RPC_URL" default:"http://127.0.0.1:8332" validate:"required,url"`
		Nodes        map[string]string `envconfig:"NODES" validate:"dive,keys,chaincode,endkeys,url"`
		RPCUser      string            `envconfig:"RPC_USER"`
		RPCPassword  string            `envconfig:"RPC_PASSWORD"`
		PollInterval time.Duration     `envconfig:"POLL_INTERVAL" default:"10s" validate:"gt=0"`
		Mempool      bool              `envconfig:"MEMPOOL" default:"true"`
	}

	// Redis configures checkpoint storage. An empty Addr disables it.
	Redis struct {
		Addr     string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" validate:"min=0"`
	}

	// Metrics configures the Prometheus endpoint. An empty Addr disables it.
	Metrics struct {
		Addr string `envconfig:"ADDR" default:":9100"`
	}

	// OTEL configures the OTLP exporters.
	OTEL struct {
		Enabled     bool   `envconfig:"ENABLED" default:"false"`
		ServiceName string `envconfig:"SERVICE_NAME" default:"chainpub" validate:"required_if=Enabled true"`
	}

	// Config is the full chainpub configuration.
	Config struct {
		Chains    []string          `envconfig:"CHAINS" default:"btc" validate:"chaincodes"`
		ChainType network.ChainType `envconfig:"CHAIN_TYPE" default:"mainnet" validate:"oneof=mainnet testnet regtest signet"`
		LogLevel  string            `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

		ZMQ      ZMQ      `envconfig:"ZMQ"`
		Queue    Queue    `envconfig:"QUEUE"`
		Bitcoind Bitcoind `envconfig:"BITCOIND"`
		Redis    Redis    `envconfig:"REDIS"`
		Metrics  Metrics  `envconfig:"METRICS"`
		OTEL     OTEL     `envconfig:"OTEL"`
	}
)

// NodeURL returns the RPC endpoint of the node serving the chain code.
func (b Bitcoind) NodeURL(code string) string {
	for k, v := range b.Nodes {
		if strings.EqualFold(k, code) {
			return v
		}
	}

	return b.RPCURL
}

// Load reads the optional env files (".env" when none is given) and then the
// environment. The result is validated.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
