package token

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_SepoliaUSDC(t *testing.T) {
	assert.Equal(t, 0, CkSepoliaUSDC.ChainID().Cmp(big.NewInt(11155111)))
	assert.Equal(t, "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238", CkSepoliaUSDC.Address())
}

func TestToken_MainnetUSDC(t *testing.T) {
	assert.Equal(t, 0, CkUSDC.ChainID().Cmp(big.NewInt(1)))
	assert.Equal(t, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", CkUSDC.Address())
}

func TestToken_ContractIsFreshCopy(t *testing.T) {
	c := CkUSDC.Contract()
	c.ChainID.SetInt64(42)

	assert.Equal(t, int64(1), CkUSDC.ChainID().Int64())
}

func TestParseToken(t *testing.T) {
	got, err := ParseToken(" CkSepoliaUSDC ")
	require.NoError(t, err)
	assert.Equal(t, CkSepoliaUSDC, got)

	got, err = ParseToken("ckusdc")
	require.NoError(t, err)
	assert.Equal(t, CkUSDC, got)

	_, err = ParseToken("ckbtc")
	assert.Error(t, err)
}

func TestTokens_AllResolvable(t *testing.T) {
	for _, tok := range Tokens() {
		assert.NotPanics(t, func() { _ = tok.Contract() })
	}
}

func TestParseAsset(t *testing.T) {
	a, err := ParseAsset("ETH")
	require.NoError(t, err)
	assert.Equal(t, ETH, a)
	assert.Equal(t, int32(18), a.Decimals())

	a, err = ParseAsset("usdc")
	require.NoError(t, err)
	assert.Equal(t, USDC, a)
	assert.Equal(t, int32(6), a.Decimals())

	_, err = ParseAsset("btc")
	assert.Error(t, err)
}
