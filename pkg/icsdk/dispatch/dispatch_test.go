package dispatch

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/aviate-labs/agent-go/principal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/dispatch/mocks"
)

var testCanister = principal.MustDecode("ss2fx-dyaaa-aaaar-qacoq-cai")

type echoArg struct {
	Value string `ic:"value"`
}

func newTestDispatcher(t *testing.T, caller Caller) *Dispatcher {
	t.Helper()
	d, err := New(caller, WithLogger(zap.NewNop()), WithMetrics(false))
	require.NoError(t, err)
	return d
}

func TestNew_NilCaller(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestDispatcher_Call_Success(t *testing.T) {
	ctx := context.Background()
	caller := mocks.NewCaller(t)
	arg := echoArg{Value: "ping"}

	caller.EXPECT().
		Call(ctx, testCanister, "echo", []any{arg}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ principal.Principal, _ string, _ []any, out []any) error {
			*(out[0].(*string)) = "pong"
			return nil
		}).
		Once()

	var got string
	err := newTestDispatcher(t, caller).Call(ctx, Request{Canister: testCanister, Method: "echo", Arg: arg}, &got)

	require.NoError(t, err)
	assert.Equal(t, "pong", got)
}

func TestDispatcher_Call_EmptyMethod(t *testing.T) {
	caller := mocks.NewCaller(t)

	var out string
	err := newTestDispatcher(t, caller).Call(context.Background(), Request{Canister: testCanister}, &out)

	assert.Error(t, err)
	assert.False(t, IsRejection(err))
}

func TestDispatcher_Call_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		callErr  error
		wantCode RejectCode
	}{
		{
			name:     "deadline",
			callErr:  context.DeadlineExceeded,
			wantCode: CodeTimeout,
		},
		{
			name:     "canceled",
			callErr:  context.Canceled,
			wantCode: CodeCanceled,
		},
		{
			name:     "unreachable",
			callErr:  &url.Error{Op: "Post", URL: "https://icp-api.io", Err: errors.New("connection refused")},
			wantCode: CodeUnreachable,
		},
		{
			name:     "replica reject",
			callErr:  errors.New("canister has no update method 'nope'"),
			wantCode: CodeRejected,
		},
		{
			name:     "preclassified",
			callErr:  &RejectError{Code: CodeTimeout, Message: "no reply"},
			wantCode: CodeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := mocks.NewCaller(t)
			caller.EXPECT().
				Call(mock.Anything, testCanister, "icrc1_transfer", mock.Anything, mock.Anything).
				Return(tt.callErr).
				Once()

			var out string
			err := newTestDispatcher(t, caller).Call(
				context.Background(),
				Request{Canister: testCanister, Method: "icrc1_transfer", Arg: echoArg{}},
				&out,
			)

			rej, ok := AsRejection(err)
			require.True(t, ok, "expected RejectError, got %v", err)
			assert.Equal(t, tt.wantCode, rej.Code)
			assert.Equal(t, testCanister.String(), rej.Canister)
			assert.Equal(t, "icrc1_transfer", rej.Method)
			assert.NotEmpty(t, rej.Message)
			assert.Contains(t, rej.Error(), tt.wantCode.String())
		})
	}
}

func TestDispatcher_Call_KeepsUnderlyingError(t *testing.T) {
	cause := errors.New("boom")
	caller := mocks.NewCaller(t)
	caller.EXPECT().Call(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cause).Once()

	var out string
	err := newTestDispatcher(t, caller).Call(context.Background(), Request{Canister: testCanister, Method: "m"}, &out)

	assert.ErrorIs(t, err, cause)
}

func TestRejectCode_String(t *testing.T) {
	assert.Equal(t, "Rejected", CodeRejected.String())
	assert.Equal(t, "Timeout", CodeTimeout.String())
	assert.Equal(t, "Unreachable", CodeUnreachable.String())
	assert.Equal(t, "Canceled", CodeCanceled.String())
}

func TestNewAgentCaller_NilAgent(t *testing.T) {
	_, err := NewAgentCaller(nil)
	assert.Error(t, err)
}
