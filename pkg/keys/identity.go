// Package keys loads the identity the server signs Internet Computer calls with.
package keys

import (
	"fmt"
	"os"

	"github.com/aviate-labs/agent-go/identity"

	"github.com/chainsafe/ckbridge-starter/pkg/config"
)

// Supported PEM key types.
const (
	KeyTypeEd25519   = "ed25519"
	KeyTypeSecp256k1 = "secp256k1"
)

// LoadIdentity reads the configured PEM identity. Without a PEM file the
// anonymous identity is returned.
func LoadIdentity(cfg config.IdentityConfig) (identity.Identity, error) {
	if cfg.PEMFile == "" {
		return new(identity.AnonymousIdentity), nil
	}

	data, err := os.ReadFile(cfg.PEMFile)
	if err != nil {
		return nil, fmt.Errorf("read identity pem: %w", err)
	}
	return ParseIdentity(cfg.KeyType, data)
}

// ParseIdentity decodes a PEM encoded private key of the given type.
func ParseIdentity(keyType string, data []byte) (identity.Identity, error) {
	switch keyType {
	case KeyTypeEd25519, "":
		id, err := identity.NewEd25519IdentityFromPEM(data)
		if err != nil {
			return nil, fmt.Errorf("parse ed25519 identity: %w", err)
		}
		return id, nil
	case KeyTypeSecp256k1:
		id, err := identity.NewSecp256k1IdentityFromPEM(data)
		if err != nil {
			return nil, fmt.Errorf("parse secp256k1 identity: %w", err)
		}
		return id, nil
	default:
		return nil, fmt.Errorf("unsupported key type %q", keyType)
	}
}
