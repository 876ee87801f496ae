package orchestrator

import (
	"context"
	"math/big"
	"testing"

	"github.com/aviate-labs/agent-go/candid/idl"
	"github.com/aviate-labs/agent-go/principal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/dispatch"
)

var orchestratorID = principal.MustDecode("2s5qh-7aaaa-aaaar-qadya-cai")

type fakeInvoker struct {
	requests  []dispatch.Request
	ReplyFunc func(req dispatch.Request, out any) error
}

func (f *fakeInvoker) Call(_ context.Context, req dispatch.Request, out any) error {
	f.requests = append(f.requests, req)
	if f.ReplyFunc != nil {
		return f.ReplyFunc(req, out)
	}
	return nil
}

func TestClient_CanisterIDs_Registered(t *testing.T) {
	ledgerID := principal.MustDecode("yfumr-cyaaa-aaaar-qaela-cai")
	indexID := principal.MustDecode("ycvkf-paaaa-aaaar-qaelq-cai")

	inv := &fakeInvoker{
		ReplyFunc: func(_ dispatch.Request, out any) error {
			*(out.(**ManagedCanisterIDs)) = &ManagedCanisterIDs{
				Ledger:   &ledgerID,
				Index:    &indexID,
				Archives: []principal.Principal{},
			}
			return nil
		},
	}
	c, err := New(inv)
	require.NoError(t, err)

	contract := Erc20Contract{
		ChainID: idl.NewBigNat(big.NewInt(11155111)),
		Address: "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238",
	}
	got, err := c.CanisterIDs(context.Background(), orchestratorID, contract)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, ledgerID, *got.Ledger)
	assert.Equal(t, indexID, *got.Index)
	assert.Empty(t, got.Archives)

	require.Len(t, inv.requests, 1)
	assert.Equal(t, "canister_ids", inv.requests[0].Method)
	assert.Equal(t, orchestratorID, inv.requests[0].Canister)
	assert.Equal(t, contract, inv.requests[0].Arg)
}

func TestClient_CanisterIDs_NotRegistered(t *testing.T) {
	c, _ := New(&fakeInvoker{})

	got, err := c.CanisterIDs(context.Background(), orchestratorID, Erc20Contract{Address: "0x0"})

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_CanisterIDs_Rejection(t *testing.T) {
	inv := &fakeInvoker{
		ReplyFunc: func(dispatch.Request, any) error {
			return &dispatch.RejectError{Code: dispatch.CodeRejected, Message: "canister stopped"}
		},
	}
	c, _ := New(inv)

	_, err := c.CanisterIDs(context.Background(), orchestratorID, Erc20Contract{})

	assert.True(t, dispatch.IsRejection(err))
}

func TestNew_NilInvoker(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}
