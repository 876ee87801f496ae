package service

import (
	"fmt"

	"github.com/chainsafe/ckbridge-starter/internal/metrics"
	apperrors "github.com/chainsafe/ckbridge-starter/pkg/app/errors"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/dispatch"
)

const (
	variantTemporarilyUnavailable = "TemporarilyUnavailable"

	errorComponentCanister = "canister"
	errorComponentRegistry = "orchestrator"
)

// mapCallError converts a canister client error into a ServiceError.
// Error variants returned by the canister keep their variant name as reason.
func mapCallError(err error, message string) error {
	if rej, ok := dispatch.AsRejection(err); ok {
		countError(errorComponentCanister, rej.Code.String())
		if rej.Code == dispatch.CodeTimeout {
			return apperrors.ConnectionTimeoutError(err, message+": canister did not answer in time")
		}
		return apperrors.DependencyFailureError(err, fmt.Sprintf("%s: %s", message, rej.Code))
	}

	if appErr, ok := dispatch.AsAppError(err); ok {
		countError(errorComponentCanister, appErr.Variant())
		if appErr.Variant() == variantTemporarilyUnavailable {
			return apperrors.RecoveringError(err, appErr.Error())
		}
		return apperrors.RejectedError(err, appErr.Variant(), appErr.Error())
	}

	countError(errorComponentCanister, "unknown")
	return apperrors.GeneralError(err)
}

// foldRegistryError turns any orchestrator failure into a descriptive error
// naming how the call failed.
func foldRegistryError(err error) error {
	if rej, ok := dispatch.AsRejection(err); ok {
		countError(errorComponentRegistry, rej.Code.String())
		msg := fmt.Sprintf("canister error: %s - %s", rej.Code, rej.Message)
		if rej.Code == dispatch.CodeTimeout {
			return apperrors.ConnectionTimeoutError(err, msg)
		}
		return apperrors.DependencyFailureError(err, msg)
	}
	countError(errorComponentRegistry, "call")
	return apperrors.DependencyFailureError(err, "call error: "+err.Error())
}

func countError(component, errorType string) {
	metrics.ErrorsTotal.WithLabelValues(component, errorType).Inc()
}
