// Package orchestrator queries the ckERC20 ledger suite orchestrator for the
// canisters it manages for an ERC-20 contract.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/aviate-labs/agent-go/candid/idl"
	"github.com/aviate-labs/agent-go/principal"

	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/dispatch"
)

const methodCanisterIDs = "canister_ids"

// Erc20Contract identifies an ERC-20 contract by chain id and address.
type Erc20Contract struct {
	ChainID idl.Nat `ic:"chain_id" json:"chain_id"`
	Address string  `ic:"address" json:"address"`
}

// ManagedCanisterIDs lists the canisters the orchestrator runs for a token.
// Registration can be partial, so every field may be empty.
type ManagedCanisterIDs struct {
	Ledger   *principal.Principal  `ic:"ledger,omitempty" json:"ledger,omitempty"`
	Index    *principal.Principal  `ic:"index,omitempty" json:"index,omitempty"`
	Archives []principal.Principal `ic:"archives" json:"archives"`
}

// Orchestrator defines the registry lookups of the ledger suite orchestrator.
//
//go:generate mockery --name Orchestrator --output mocks --outpkg mocks --filename mock_orchestrator.go --with-expecter
type Orchestrator interface {
	// CanisterIDs returns the managed canisters for contract, or nil when the
	// orchestrator has no registration for it.
	CanisterIDs(ctx context.Context, orchestratorID principal.Principal, contract Erc20Contract) (*ManagedCanisterIDs, error)
}

// Client implements Orchestrator on top of a dispatcher.
type Client struct {
	invoker dispatch.Invoker
}

// New creates a new orchestrator client.
func New(invoker dispatch.Invoker) (*Client, error) {
	if invoker == nil {
		return nil, fmt.Errorf("nil invoker")
	}
	return &Client{invoker: invoker}, nil
}

func (c *Client) CanisterIDs(
	ctx context.Context,
	orchestratorID principal.Principal,
	contract Erc20Contract,
) (*ManagedCanisterIDs, error) {
	var res *ManagedCanisterIDs
	err := c.invoker.Call(ctx, dispatch.Request{
		Canister: orchestratorID,
		Method:   methodCanisterIDs,
		Arg:      contract,
	}, &res)
	if err != nil {
		return nil, err
	}
	return res, nil
}
