package subaccount

import (
	"regexp"
	"testing"

	"github.com/aviate-labs/agent-go/principal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

func TestFromPrincipal_Orchestrator(t *testing.T) {
	p, err := principal.Decode("2s5qh-7aaaa-aaaar-qadya-cai")
	require.NoError(t, err)

	got := FromPrincipal(p)

	assert.Equal(t, "0x0a00000000023000f00101000000000000000000000000000000000000000000", got.Hex())
	assert.Equal(t, byte(len(p.Raw)), got[0])
}

func TestFromPrincipal_Anonymous(t *testing.T) {
	p, err := principal.Decode("2vxsx-fae")
	require.NoError(t, err)

	assert.Equal(t, "0x0104000000000000000000000000000000000000000000000000000000000000", DepositAddress(p))
}

func TestFromPrincipal_Deterministic(t *testing.T) {
	ids := []string{
		"2vxsx-fae",
		"ss2fx-dyaaa-aaaar-qacoq-cai",
		"sv3dd-oaaaa-aaaar-qacoa-cai",
		"xevnm-gaaaa-aaaar-qafnq-cai",
	}
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			p := principal.MustDecode(id)

			first := FromPrincipal(p)
			second := FromPrincipal(principal.MustDecode(id))

			assert.Equal(t, first, second)
			assert.Equal(t, first.Hex(), second.Hex())
			assert.Regexp(t, hexPattern, first.Hex())
			assert.Len(t, first.Bytes(), Size)
		})
	}
}

func TestFromPrincipal_DistinctPrincipals(t *testing.T) {
	a := FromPrincipal(principal.MustDecode("ss2fx-dyaaa-aaaar-qacoq-cai"))
	b := FromPrincipal(principal.MustDecode("sv3dd-oaaaa-aaaar-qacoa-cai"))

	assert.NotEqual(t, a, b)
}

func TestFromPrincipal_LengthPrefixDisambiguates(t *testing.T) {
	// Raw bytes that are a zero-padded prefix of each other still encode differently.
	short := FromPrincipal(principal.Principal{Raw: []byte{0x01}})
	long := FromPrincipal(principal.Principal{Raw: []byte{0x01, 0x00}})

	assert.NotEqual(t, short, long)
}

func TestFromPrincipal_MaxLength(t *testing.T) {
	raw := make([]byte, MaxPrincipalLen)
	for i := range raw {
		raw[i] = 0xff
	}

	s := FromPrincipal(principal.Principal{Raw: raw})

	assert.Equal(t, byte(MaxPrincipalLen), s[0])
	assert.Equal(t, byte(0xff), s[MaxPrincipalLen])
	assert.Equal(t, []byte{0, 0}, s[MaxPrincipalLen+1:])
}

func TestFromPrincipal_OversizedPanics(t *testing.T) {
	assert.Panics(t, func() {
		FromPrincipal(principal.Principal{Raw: make([]byte, MaxPrincipalLen+1)})
	})
}

func TestDecode(t *testing.T) {
	p, err := Decode("2vxsx-fae")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04}, p.Raw)

	_, err = Decode("not-a-principal")
	assert.Error(t, err)
}

func TestDecode_RejectsOversizedPrincipal(t *testing.T) {
	// The textual form carries a valid checksum, so only the length is wrong.
	text := principal.Principal{Raw: make([]byte, MaxPrincipalLen+1)}.String()

	_, err := Decode(text)
	require.ErrorIs(t, err, ErrPrincipalTooLong)

	p, err := Decode(principal.Principal{Raw: make([]byte, MaxPrincipalLen)}.String())
	require.NoError(t, err)
	assert.Len(t, p.Raw, MaxPrincipalLen)
}

func TestBytes_ReturnsCopy(t *testing.T) {
	s := FromPrincipal(principal.MustDecode("2vxsx-fae"))

	b := s.Bytes()
	b[0] = 0xee

	assert.Equal(t, byte(1), s[0])
}
