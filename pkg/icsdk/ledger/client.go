// Package ledger implements the ICRC-1/ICRC-2 ledger calls the bridge needs:
// balance queries, approvals and transfers.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/aviate-labs/agent-go/candid/idl"
	"github.com/aviate-labs/agent-go/principal"

	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/dispatch"
)

const (
	methodBalanceOf = "icrc1_balance_of"
	methodApprove   = "icrc2_approve"
	methodTransfer  = "icrc1_transfer"
)

// ErrMalformedReply is returned when a result variant has neither case set.
var ErrMalformedReply = errors.New("malformed ledger reply")

// Ledger defines the ICRC ledger operations.
//
//go:generate mockery --name Ledger --output mocks --outpkg mocks --filename mock_ledger.go --with-expecter
type Ledger interface {
	// BalanceOf returns the balance of account on the ledger canister.
	BalanceOf(ctx context.Context, ledgerID principal.Principal, account Account) (*big.Int, error)

	// Approve submits an icrc2_approve and returns the approval block index.
	Approve(ctx context.Context, ledgerID principal.Principal, args ApproveArgs) (*big.Int, error)

	// Transfer submits an icrc1_transfer and returns the transfer block index.
	Transfer(ctx context.Context, ledgerID principal.Principal, args TransferArg) (*big.Int, error)
}

// Client implements Ledger on top of a dispatcher.
type Client struct {
	invoker dispatch.Invoker
}

// New creates a new ledger client.
func New(invoker dispatch.Invoker) (*Client, error) {
	if invoker == nil {
		return nil, fmt.Errorf("nil invoker")
	}
	return &Client{invoker: invoker}, nil
}

func (c *Client) BalanceOf(ctx context.Context, ledgerID principal.Principal, account Account) (*big.Int, error) {
	var balance idl.Nat
	err := c.invoker.Call(ctx, dispatch.Request{
		Canister: ledgerID,
		Method:   methodBalanceOf,
		Arg:      account,
	}, &balance)
	if err != nil {
		return nil, err
	}
	return NatToBig(balance), nil
}

func (c *Client) Approve(ctx context.Context, ledgerID principal.Principal, args ApproveArgs) (*big.Int, error) {
	var res ApproveResult
	err := c.invoker.Call(ctx, dispatch.Request{
		Canister: ledgerID,
		Method:   methodApprove,
		Arg:      args,
	}, &res)
	if err != nil {
		return nil, err
	}

	switch {
	case res.Ok != nil:
		return NatToBig(*res.Ok), nil
	case res.Err != nil:
		return nil, res.Err
	default:
		return nil, fmt.Errorf("%s: %w", methodApprove, ErrMalformedReply)
	}
}

func (c *Client) Transfer(ctx context.Context, ledgerID principal.Principal, args TransferArg) (*big.Int, error) {
	var res TransferResult
	err := c.invoker.Call(ctx, dispatch.Request{
		Canister: ledgerID,
		Method:   methodTransfer,
		Arg:      args,
	}, &res)
	if err != nil {
		return nil, err
	}

	switch {
	case res.Ok != nil:
		return NatToBig(*res.Ok), nil
	case res.Err != nil:
		return nil, res.Err
	default:
		return nil, fmt.Errorf("%s: %w", methodTransfer, ErrMalformedReply)
	}
}

// Nat converts a non-negative big integer to a Candid nat.
func Nat(v *big.Int) idl.Nat {
	return idl.NewBigNat(new(big.Int).Set(v))
}

// NatToBig converts a Candid nat to a big integer.
func NatToBig(n idl.Nat) *big.Int {
	if b := n.BigInt(); b != nil {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}
