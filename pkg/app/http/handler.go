// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/ckbridge-starter/pkg/app/errors"
)

// maxBodySize bounds request bodies read by DecodeJSON.
const maxBodySize = 1 << 20

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
	Reason     string `json:"reason,omitempty"`
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
//
// Usage with chi:
//
//	r.Post("/v1/approve", http.HandleError(h.approve))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// LogErrors is HandleError that also logs the failure. Errors caused by the
// client are logged at debug level, everything else at error level.
func LogErrors(logger *zap.Logger, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		}
		if apperrors.IsInternalError(err) {
			logger.Error("request failed", fields...)
		} else {
			logger.Debug("request rejected", fields...)
		}
		DefaultErrorHandler(w, err)
	}
}

// MethodNotAllowed answers requests for a known path with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	DefaultErrorHandler(w, apperrors.NotSupportedError(nil, r.Method+" is not supported on "+r.URL.Path))
}

// DefaultErrorHandler handles errors returned from HTTP handlers
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		WriteJSON(w, svcErr.StatusCode(), &ErrorResponse{
			ErrMsg:     svcErr.Message,
			ErrMsgCode: svcErr.StatusCode(),
			Reason:     svcErr.Reason,
		})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, &ErrorResponse{
		ErrMsg:     "Unexpected Service Error",
		ErrMsgCode: http.StatusInternalServerError,
	})
}

// WriteJSON writes data as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeJSON reads a size-limited JSON body into dst.
// Failures are returned as bad request errors.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}
