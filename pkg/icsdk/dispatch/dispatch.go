// Package dispatch issues single update calls to Internet Computer canisters
// and separates transport rejections from successful replies.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/aviate-labs/agent-go/principal"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/ckbridge-starter/internal/metrics"
)

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
)

// Caller performs one Candid update call against a canister, decoding the
// reply into out. Calls carry no cycles.
//
//go:generate mockery --name Caller --output mocks --outpkg mocks --filename mock_caller.go --with-expecter
type Caller interface {
	Call(ctx context.Context, canisterID principal.Principal, method string, args []any, out []any) error
}

// Request names the canister, the method and the single Candid argument record.
type Request struct {
	Canister principal.Principal
	Method   string
	Arg      any
}

// Dispatcher sends requests through a Caller. It never retries: every Call
// results in exactly one outbound call.
type Dispatcher struct {
	caller  Caller
	logger  *zap.Logger
	metrics bool
}

// New creates a dispatcher on top of caller.
func New(caller Caller, opts ...Option) (*Dispatcher, error) {
	if caller == nil {
		return nil, fmt.Errorf("nil caller")
	}
	s := applyOptions(opts)
	return &Dispatcher{
		caller:  caller,
		logger:  s.logger,
		metrics: s.metrics,
	}, nil
}

// Call issues req and decodes the reply into out, which must be a pointer.
// A nil error means out holds the decoded reply. Any failure to complete the
// call is returned as a *RejectError.
func (d *Dispatcher) Call(ctx context.Context, req Request, out any) error {
	if req.Method == "" {
		return fmt.Errorf("empty method name")
	}

	callID := uuid.NewString()
	canister := req.Canister.String()
	logger := d.logger.With(
		zap.String("call_id", callID),
		zap.String("canister", canister),
		zap.String("method", req.Method),
	)

	logger.Debug("Dispatching canister call")
	start := time.Now()

	err := d.caller.Call(ctx, req.Canister, req.Method, []any{req.Arg}, []any{out})
	elapsed := time.Since(start)

	if err != nil {
		rej, ok := AsRejection(err)
		if !ok {
			rej = &RejectError{
				Code:    classify(err),
				Message: err.Error(),
				Err:     err,
			}
		}
		rej.Canister = canister
		rej.Method = req.Method

		logger.Warn("Canister call rejected",
			zap.String("code", rej.Code.String()),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		d.observe(canister, req.Method, outcomeRejected, elapsed)
		return rej
	}

	logger.Debug("Canister call completed", zap.Duration("duration", elapsed))
	d.observe(canister, req.Method, outcomeOK, elapsed)
	return nil
}

func (d *Dispatcher) observe(canister, method, outcome string, elapsed time.Duration) {
	if !d.metrics {
		return
	}
	metrics.CanisterCallsTotal.WithLabelValues(canister, method, outcome).Inc()
	metrics.CanisterCallDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Invoker is the narrow interface canister clients depend on.
type Invoker interface {
	Call(ctx context.Context, req Request, out any) error
}

var _ Invoker = (*Dispatcher)(nil)
