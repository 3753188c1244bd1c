package network

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"

	"github.com/gabapcia/chainpub/internal/pkg/logger"
)

var (
	// ErrNoNetworkConfigured is returned by Resolve when none of the configured
	// chain codes is known.
	ErrNoNetworkConfigured = errors.New("no supported network configured")

	// ErrUnknownChainType is returned by ParseChainType for unsupported values.
	ErrUnknownChainType = errors.New("unknown chain type")
)

// ChainType selects which deployment of every chain is used (main network,
// public test network or local regression network).
type ChainType string

const (
	Mainnet ChainType = "mainnet"
	Testnet ChainType = "testnet"
	Regtest ChainType = "regtest"
	Signet  ChainType = "signet"
)

// ParseChainType validates a configuration string.
func ParseChainType(s string) (ChainType, error) {
	switch t := ChainType(strings.ToLower(s)); t {
	case Mainnet, Testnet, Regtest, Signet:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChainType, s)
	}
}

// satoshiDecimals is the number of decimals of BTC-like chains (1 coin = 1e8 units).
const satoshiDecimals = 8

// Litecoin is not part of btcd, so its address parameters are declared here.
// Only the fields used for address encoding are populated.
var (
	litecoinMainNetParams = chaincfg.Params{
		Name:             "litecoin",
		Net:              wire.BitcoinNet(0xdbb6c0fb),
		Bech32HRPSegwit:  "ltc",
		PubKeyHashAddrID: 0x30,
		ScriptHashAddrID: 0x32,
		PrivateKeyID:     0xb0,
	}

	litecoinTestNetParams = chaincfg.Params{
		Name:             "litecoin-testnet",
		Net:              wire.BitcoinNet(0xf1c8d2fd),
		Bech32HRPSegwit:  "tltc",
		PubKeyHashAddrID: 0x6f,
		ScriptHashAddrID: 0x3a,
		PrivateKeyID:     0xef,
	}

	litecoinRegTestParams = chaincfg.Params{
		Name:             "litecoin-regtest",
		Net:              wire.BitcoinNet(0xdab5bffa),
		Bech32HRPSegwit:  "rltc",
		PubKeyHashAddrID: 0x6f,
		ScriptHashAddrID: 0x3a,
		PrivateKeyID:     0xef,
	}
)

// Provider resolves chain codes to Network descriptors for one ChainType.
type Provider struct {
	chainType ChainType
	networks  map[string]Network // keyed by upper-cased code
}

// NewProvider builds the registry of supported networks for chainType.
// Chains without a deployment for chainType (e.g., Litecoin on signet) are
// left out.
func NewProvider(chainType ChainType) *Provider {
	p := &Provider{
		chainType: chainType,
		networks:  make(map[string]Network),
	}

	switch chainType {
	case Mainnet:
		p.register("BTC", "bitcoin", &chaincfg.MainNetParams)
		p.register("LTC", "litecoin", &litecoinMainNetParams)
	case Testnet:
		p.register("BTC", "bitcoin-testnet", &chaincfg.TestNet3Params)
		p.register("LTC", "litecoin-testnet", &litecoinTestNetParams)
	case Regtest:
		p.register("BTC", "bitcoin-regtest", &chaincfg.RegressionNetParams)
		p.register("LTC", "litecoin-regtest", &litecoinRegTestParams)
	case Signet:
		p.register("BTC", "bitcoin-signet", &chaincfg.SigNetParams)
	}

	return p
}

func (p *Provider) register(code, name string, params *chaincfg.Params) {
	p.networks[code] = Network{
		Code:     code,
		Name:     name,
		Params:   params,
		Decimals: satoshiDecimals,
	}
}

// ChainType returns the deployment this provider was built for.
func (p *Provider) ChainType() ChainType {
	return p.chainType
}

// FromCode looks up a network by chain code, ignoring case.
func (p *Provider) FromCode(code string) (Network, bool) {
	n, ok := p.networks[strings.ToUpper(strings.TrimSpace(code))]
	return n, ok
}

// Resolve maps configured chain codes to networks, in configuration order and
// without duplicates. Unknown codes are logged and skipped. It returns
// ErrNoNetworkConfigured when no code could be resolved.
func (p *Provider) Resolve(ctx context.Context, codes []string) ([]Network, error) {
	var (
		networks = make([]Network, 0, len(codes))
		seen     = make(map[string]struct{}, len(codes))
	)
	for _, code := range codes {
		if strings.TrimSpace(code) == "" {
			continue
		}

		n, ok := p.FromCode(code)
		if !ok {
			logger.Warn(ctx, "skipping unsupported chain code",
				"chain.code", code,
				"chain.type", p.chainType,
			)
			continue
		}

		if _, dup := seen[n.Code]; dup {
			continue
		}

		seen[n.Code] = struct{}{}
		networks = append(networks, n)
	}

	if len(networks) == 0 {
		return nil, fmt.Errorf("%w: %v (%s)", ErrNoNetworkConfigured, codes, p.chainType)
	}

	return networks, nil
}
