// Package token holds the static token tables: the ckERC20 tokens the
// orchestrator can be queried for and the assets the bridge operations move.
package token

import (
	"fmt"
	"math/big"
	"strings"
)

// Token selects a ckERC20 token registered with the ledger suite orchestrator.
type Token string

const (
	CkSepoliaUSDC Token = "cksepoliausdc" // USDC on Ethereum Sepolia
	CkUSDC        Token = "ckusdc"        // USDC on Ethereum mainnet
)

// Chain ids and ERC-20 contract addresses of the supported tokens.
const (
	SepoliaChainID  = 11155111
	EthereumChainID = 1

	SepoliaUSDCAddress  = "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"
	EthereumUSDCAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

// Contract identifies an ERC-20 contract on an EVM chain.
type Contract struct {
	ChainID *big.Int
	Address string
}

type tokenInfo struct {
	chainID int64
	address string
}

var tokens = map[Token]tokenInfo{
	CkSepoliaUSDC: {chainID: SepoliaChainID, address: SepoliaUSDCAddress},
	CkUSDC:        {chainID: EthereumChainID, address: EthereumUSDCAddress},
}

// ParseToken parses the wire form of a token selector.
func ParseToken(s string) (Token, error) {
	t := Token(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tokens[t]; !ok {
		return "", fmt.Errorf("unknown token %q", s)
	}
	return t, nil
}

// Tokens returns every known token selector.
func Tokens() []Token {
	return []Token{CkSepoliaUSDC, CkUSDC}
}

// ChainID returns the EVM chain id the token's ERC-20 contract lives on.
func (t Token) ChainID() *big.Int {
	return big.NewInt(t.info().chainID)
}

// Address returns the ERC-20 contract address.
func (t Token) Address() string {
	return t.info().address
}

// Contract returns the chain id and contract address pair.
func (t Token) Contract() Contract {
	return Contract{ChainID: t.ChainID(), Address: t.Address()}
}

func (t Token) String() string {
	return string(t)
}

func (t Token) info() tokenInfo {
	info, ok := tokens[t]
	if !ok {
		panic(fmt.Sprintf("token: unknown selector %q", string(t)))
	}
	return info
}
