package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/ckbridge-starter/pkg/app/errors"
	apphttp "github.com/chainsafe/ckbridge-starter/pkg/app/http"
)

const bearerPrefix = "Bearer "

// Middleware requires a valid bearer token on every request and stores the
// token subject in the request context.
func Middleware(v Validator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "bearer token required"))
				return
			}

			sub, err := v.Validate(r.Context(), strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), sub)))
		})
	}
}
