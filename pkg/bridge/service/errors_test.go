package service

import (
	"errors"
	"math/big"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/chainsafe/ckbridge-starter/internal/metrics"
	apperrors "github.com/chainsafe/ckbridge-starter/pkg/app/errors"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/dispatch"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/ledger"
)

func TestMapCallError_CountsErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType string
		want      apperrors.Category
	}{
		{
			name:      "timeout",
			err:       &dispatch.RejectError{Code: dispatch.CodeTimeout},
			errorType: "Timeout",
			want:      apperrors.CategoryConnectionTimeout,
		},
		{
			name:      "unreachable",
			err:       &dispatch.RejectError{Code: dispatch.CodeUnreachable},
			errorType: "Unreachable",
			want:      apperrors.CategoryDependencyFailure,
		},
		{
			name:      "error variant",
			err:       &ledger.TransferError{InsufficientFunds: &ledger.InsufficientFunds{Balance: ledger.Nat(big.NewInt(1))}},
			errorType: "InsufficientFunds",
			want:      apperrors.CategoryRejected,
		},
		{
			name:      "unclassified",
			err:       errors.New("boom"),
			errorType: "unknown",
			want:      apperrors.CategoryGeneralError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.ErrorsTotal.WithLabelValues(errorComponentCanister, tt.errorType)
			before := testutil.ToFloat64(counter)

			err := mapCallError(tt.err, "transfer failed")

			assert.True(t, apperrors.Is(err, tt.want))
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestFoldRegistryError_CountsErrors(t *testing.T) {
	rejected := metrics.ErrorsTotal.WithLabelValues(errorComponentRegistry, "Rejected")
	call := metrics.ErrorsTotal.WithLabelValues(errorComponentRegistry, "call")
	rejectedBefore := testutil.ToFloat64(rejected)
	callBefore := testutil.ToFloat64(call)

	_ = foldRegistryError(&dispatch.RejectError{Code: dispatch.CodeRejected, Message: "stopped"})
	_ = foldRegistryError(errors.New("decode failed"))

	assert.Equal(t, rejectedBefore+1, testutil.ToFloat64(rejected))
	assert.Equal(t, callBefore+1, testutil.ToFloat64(call))
}
