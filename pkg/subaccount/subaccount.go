// Package subaccount derives ICRC-1 subaccounts from principals using the
// length-prefixed encoding the ckETH and ckERC20 minters expect for deposits.
package subaccount

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/aviate-labs/agent-go/principal"
)

// Size is the fixed length of an ICRC-1 subaccount.
const Size = 32

// MaxPrincipalLen is the largest raw principal that fits after the length byte.
const MaxPrincipalLen = 29

// ErrPrincipalTooLong is returned for principals longer than MaxPrincipalLen.
var ErrPrincipalTooLong = errors.New("principal longer than 29 bytes")

// Subaccount is a 32-byte ICRC-1 subaccount.
type Subaccount [Size]byte

// Decode parses a textual principal and rejects ones that cannot be encoded
// as a subaccount. The textual checksum does not bound the length.
func Decode(text string) (principal.Principal, error) {
	p, err := principal.Decode(text)
	if err != nil {
		return principal.Principal{}, err
	}
	if len(p.Raw) > MaxPrincipalLen {
		return principal.Principal{}, fmt.Errorf("%w: got %d", ErrPrincipalTooLong, len(p.Raw))
	}
	return p, nil
}

// FromPrincipal encodes p as a subaccount: the first byte holds the length of
// the raw principal, followed by the raw bytes, zero padded to 32 bytes.
//
// Callers must pass principals obtained through Decode or a trusted source;
// an oversized principal panics.
func FromPrincipal(p principal.Principal) Subaccount {
	if len(p.Raw) > MaxPrincipalLen {
		panic(fmt.Sprintf("subaccount: principal is %d bytes, max %d", len(p.Raw), MaxPrincipalLen))
	}

	var s Subaccount
	s[0] = byte(len(p.Raw))
	copy(s[1:], p.Raw)
	return s
}

// Bytes returns a copy of the subaccount bytes.
func (s Subaccount) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, s[:])
	return b
}

// Hex renders the subaccount as 0x followed by 64 lowercase hex characters.
func (s Subaccount) Hex() string {
	return "0x" + hex.EncodeToString(s[:])
}

func (s Subaccount) String() string {
	return s.Hex()
}

// DepositAddress returns the hex deposit subaccount for the given identity.
func DepositAddress(id principal.Principal) string {
	return FromPrincipal(id).Hex()
}
