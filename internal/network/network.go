// Package network describes the blockchain networks the relay can publish and
// resolves configured chain codes (e.g., "BTC") into network descriptors.
//
// A Network carries everything the publisher reads from a chain: the short
// code used in wire messages, the address encoding parameters, and the number
// of decimals between the smallest unit and the display unit.
package network

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/shopspring/decimal"
)

// wireNamePrefix is prepended to the upper-cased chain code in wire messages.
const wireNamePrefix = "NETWORK_"

// Network is an immutable descriptor of one supported chain.
type Network struct {
	Code     string           // Chain code in its canonical case (e.g., "BTC")
	Name     string           // Human readable name (e.g., "bitcoin")
	Params   *chaincfg.Params // Address encoding parameters
	Decimals int32            // Decimal places between the smallest unit and the display unit
}

// WireName returns the network identifier used in frames and messages,
// e.g. "NETWORK_BTC".
func (n Network) WireName() string {
	return wireNamePrefix + strings.ToUpper(n.Code)
}

// ToDisplayUnit converts an amount in the smallest unit (e.g., satoshis) to
// the display unit (e.g., BTC) without floating point rounding.
func (n Network) ToDisplayUnit(value int64) decimal.Decimal {
	return decimal.New(value, -n.Decimals)
}

// DecodeAddress extracts the destination address encoded by an output script.
//
// Only scripts that pay to exactly one address are decoded: P2PKH, P2SH,
// P2WPKH, P2WSH and P2TR. Any other script (bare public keys, multisig,
// OP_RETURN data carriers, non-standard or malformed scripts) reports false.
// DecodeAddress never panics on arbitrary input.
func (n Network) DecodeAddress(pkScript []byte) (string, bool) {
	if n.Params == nil || len(pkScript) == 0 {
		return "", false
	}

	class, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, n.Params)
	if err != nil || len(addrs) != 1 {
		return "", false
	}

	switch class {
	case txscript.PubKeyHashTy,
		txscript.ScriptHashTy,
		txscript.WitnessV0PubKeyHashTy,
		txscript.WitnessV0ScriptHashTy,
		txscript.WitnessV1TaprootTy:
		return addrs[0].EncodeAddress(), true
	default:
		return "", false
	}
}
