package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const jwksFetchTimeout = 10 * time.Second

var (
	// ErrKeyNotFound is returned when the token's kid is not in the key set.
	ErrKeyNotFound = errors.New("signing key not found")
	// ErrMissingSubject is returned for tokens without a sub claim.
	ErrMissingSubject = errors.New("token has no subject")
)

// Validator validates bearer tokens and returns the authenticated subject.
//
//go:generate mockery --name Validator --output mocks --outpkg mocks --filename mock_validator.go --with-expecter
type Validator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// JWTValidator validates RS256 JWT tokens against a JWKS endpoint
type JWTValidator struct {
	jwksURL string
	issuer  string
	keys    map[string]*rsa.PublicKey
	keysMu  sync.RWMutex
	client  *http.Client
}

var _ Validator = (*JWTValidator)(nil)

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents a JSON Web Key
type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// NewJWTValidator creates a new JWT validator
func NewJWTValidator(jwksURL, issuer string) *JWTValidator {
	return &JWTValidator{
		jwksURL: jwksURL,
		issuer:  issuer,
		keys:    make(map[string]*rsa.PublicKey),
		client: &http.Client{
			Timeout: jwksFetchTimeout,
		},
	}
}

// Validate parses and verifies the token and returns its sub claim.
func (v *JWTValidator) Validate(ctx context.Context, tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing kid in token header")
		}
		return v.getKey(ctx, kid)
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims type")
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}

// getKey retrieves a key by ID, refreshing from JWKS if needed
func (v *JWTValidator) getKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.keysMu.RLock()
	key, exists := v.keys[kid]
	v.keysMu.RUnlock()
	if exists {
		return key, nil
	}

	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	v.keysMu.RLock()
	key, exists = v.keys[kid]
	v.keysMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, kid)
	}
	return key, nil
}

// refreshKeys fetches and parses the JWKS
func (v *JWTValidator) refreshKeys(ctx context.Context) error {
	if v.jwksURL == "" {
		return fmt.Errorf("JWKS URL not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, jwksFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	v.keysMu.Lock()
	defer v.keysMu.Unlock()

	for _, key := range jwks.Keys {
		if key.Kty != "RSA" {
			continue
		}
		pubKey, err := parseRSAPublicKey(key.N, key.E)
		if err != nil {
			continue // Skip invalid keys
		}
		v.keys[key.Kid] = pubKey
	}
	return nil
}

// parseRSAPublicKey parses RSA public key components from base64url-encoded strings
func parseRSAPublicKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
