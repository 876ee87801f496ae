package token

import (
	"fmt"
	"strings"
)

// Asset is a bridged asset the bridge operations act on.
type Asset string

const (
	ETH  Asset = "eth"  // ckETH (or ckSepoliaETH)
	USDC Asset = "usdc" // ckUSDC (or ckSepoliaUSDC)
)

// ParseAsset parses the wire form of an asset.
func ParseAsset(s string) (Asset, error) {
	switch a := Asset(strings.ToLower(strings.TrimSpace(s))); a {
	case ETH, USDC:
		return a, nil
	default:
		return "", fmt.Errorf("unknown asset %q", s)
	}
}

// Decimals returns the number of decimals of the asset's ledger.
func (a Asset) Decimals() int32 {
	if a == USDC {
		return 6
	}
	return 18
}

func (a Asset) String() string {
	return string(a)
}
