// dev-auth is a local token issuer for exercising the bridge API with
// authentication enabled. It serves a JWKS document and mints RS256 tokens
// whose subject is the requested principal. Keys live in memory only.
//
// Usage:
//
//	go run ./cmd/dev-auth -port 8088
//	curl -s -X POST localhost:8088/token -d '{"principal":"2vxsx-fae"}'
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"flag"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"time"

	"github.com/aviate-labs/agent-go/principal"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/ckbridge-starter/pkg/app/errors"
	apphttp "github.com/chainsafe/ckbridge-starter/pkg/app/http"
	"github.com/chainsafe/ckbridge-starter/pkg/auth"
)

const keyID = "dev-auth"

var (
	port     = flag.Int("port", 8088, "Port to listen on")
	tokenTTL = flag.Duration("ttl", 24*time.Hour, "Lifetime of issued tokens")
)

type tokenRequest struct {
	Principal string `json:"principal"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type issuer struct {
	key    *rsa.PrivateKey
	url    string
	logger *zap.Logger
}

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		logger.Fatal("Failed to generate signing key", zap.Error(err))
	}

	iss := &issuer{
		key:    key,
		url:    fmt.Sprintf("http://localhost:%d", *port),
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/.well-known/jwks.json", iss.jwks)
	r.Post("/token", apphttp.HandleError(iss.token))

	logger.Info("dev-auth listening",
		zap.String("issuer", iss.url),
		zap.String("jwks_url", iss.url+"/.well-known/jwks.json"),
	)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), r); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func (i *issuer) jwks(w http.ResponseWriter, _ *http.Request) {
	apphttp.WriteJSON(w, http.StatusOK, auth.JWKS{Keys: []auth.JWK{{
		Kid: keyID,
		Kty: "RSA",
		Alg: jwt.SigningMethodRS256.Alg(),
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(i.key.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(i.key.E)).Bytes()),
	}}})
}

func (i *issuer) token(w http.ResponseWriter, r *http.Request) error {
	var req tokenRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if _, err := principal.Decode(req.Principal); err != nil {
		return apperrors.BadRequestError(err, "principal is not a valid principal")
	}

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Issuer:    i.url,
		Subject:   req.Principal,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(*tokenTTL)),
	})
	tok.Header["kid"] = keyID

	signed, err := tok.SignedString(i.key)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	i.logger.Info("Issued token", zap.String("sub", req.Principal))
	apphttp.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int(tokenTTL.Seconds()),
	})
	return nil
}
