// Package minter calls the ckETH minter to withdraw ckETH and ckERC20 tokens
// to Ethereum addresses.
package minter

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/aviate-labs/agent-go/principal"

	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/dispatch"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/ledger"
)

const (
	methodWithdrawEth   = "withdraw_eth"
	methodWithdrawErc20 = "withdraw_erc20"
)

// ErrMalformedReply is returned when a result variant has neither case set.
var ErrMalformedReply = errors.New("malformed minter reply")

// EthWithdrawal is an accepted ETH withdrawal.
type EthWithdrawal struct {
	BlockIndex *big.Int
}

// Erc20Withdrawal is an accepted ERC-20 withdrawal.
type Erc20Withdrawal struct {
	CkErc20BlockIndex *big.Int
	CkEthBlockIndex   *big.Int
}

// Minter defines the withdrawal operations of the ckETH minter.
//
//go:generate mockery --name Minter --output mocks --outpkg mocks --filename mock_minter.go --with-expecter
type Minter interface {
	// WithdrawEth burns ckETH and schedules an ETH transfer to the recipient.
	WithdrawEth(ctx context.Context, minterID principal.Principal, arg WithdrawalArg) (*EthWithdrawal, error)

	// WithdrawErc20 burns ckERC20 (plus ckETH for fees) and schedules an ERC-20 transfer.
	WithdrawErc20(ctx context.Context, minterID principal.Principal, arg WithdrawErc20Arg) (*Erc20Withdrawal, error)
}

// Client implements Minter on top of a dispatcher.
type Client struct {
	invoker dispatch.Invoker
}

// New creates a new minter client.
func New(invoker dispatch.Invoker) (*Client, error) {
	if invoker == nil {
		return nil, fmt.Errorf("nil invoker")
	}
	return &Client{invoker: invoker}, nil
}

func (c *Client) WithdrawEth(ctx context.Context, minterID principal.Principal, arg WithdrawalArg) (*EthWithdrawal, error) {
	var res WithdrawEthResult
	err := c.invoker.Call(ctx, dispatch.Request{
		Canister: minterID,
		Method:   methodWithdrawEth,
		Arg:      arg,
	}, &res)
	if err != nil {
		return nil, err
	}

	switch {
	case res.Ok != nil:
		return &EthWithdrawal{BlockIndex: ledger.NatToBig(res.Ok.BlockIndex)}, nil
	case res.Err != nil:
		return nil, res.Err
	default:
		return nil, fmt.Errorf("%s: %w", methodWithdrawEth, ErrMalformedReply)
	}
}

func (c *Client) WithdrawErc20(ctx context.Context, minterID principal.Principal, arg WithdrawErc20Arg) (*Erc20Withdrawal, error) {
	var res WithdrawErc20Result
	err := c.invoker.Call(ctx, dispatch.Request{
		Canister: minterID,
		Method:   methodWithdrawErc20,
		Arg:      arg,
	}, &res)
	if err != nil {
		return nil, err
	}

	switch {
	case res.Ok != nil:
		return &Erc20Withdrawal{
			CkErc20BlockIndex: ledger.NatToBig(res.Ok.CkErc20BlockIndex),
			CkEthBlockIndex:   ledger.NatToBig(res.Ok.CkEthBlockIndex),
		}, nil
	case res.Err != nil:
		return nil, res.Err
	default:
		return nil, fmt.Errorf("%s: %w", methodWithdrawErc20, ErrMalformedReply)
	}
}
