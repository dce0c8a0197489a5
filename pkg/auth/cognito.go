// Package auth verifies Cognito ID tokens against the user pool's
// published key set and carries the authenticated username through the
// request context.
package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	apperrors "musclelog-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified identity the middleware hands to handlers
type Claims struct {
	Username string
}

// Verifier checks a bearer token and extracts the caller's identity
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Claims, error)
}

// usernameClaim is where Cognito puts the pool username
const usernameClaim = "cognito:username"

// CognitoVerifier validates RS256 ID tokens issued by a Cognito user
// pool. Keys are fetched from the issuer's JWKS document per request;
// invocations are short-lived, so there is no cache to invalidate.
type CognitoVerifier struct {
	issuer     string
	audience   string
	jwksURL    string
	httpClient *http.Client
	parser     *jwt.Parser
}

// NewCognitoVerifier creates a verifier bound to one issuer and audience
func NewCognitoVerifier(issuer, audience string) *CognitoVerifier {
	return &CognitoVerifier{
		issuer:     issuer,
		audience:   audience,
		jwksURL:    issuer + "/.well-known/jwks.json",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"RS256"}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
		),
	}
}

// Verify checks the token's signature, issuer and audience, and returns
// the username claim. A missing or empty username is unauthenticated.
func (v *CognitoVerifier) Verify(ctx context.Context, idToken string) (*Claims, error) {
	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(idToken, claims, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token header has no kid")
		}
		return v.publicKey(ctx, kid)
	})
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("token verification failed").WithCause(err)
	}

	username, _ := claims[usernameClaim].(string)
	if username == "" {
		return nil, apperrors.NewUnauthorizedError("username claim missing")
	}
	return &Claims{Username: username}, nil
}

// jwk is one RSA key from the issuer's JWKS document
type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// publicKey fetches the JWKS and builds the RSA key matching kid
func (v *CognitoVerifier) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching jwks: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching jwks: status %d", resp.StatusCode)
	}

	var doc struct {
		Keys []jwk `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding jwks: %w", err)
	}

	for _, key := range doc.Keys {
		if key.Kid == kid && key.Kty == "RSA" {
			return key.rsaPublicKey()
		}
	}
	return nil, fmt.Errorf("no key with kid %q", kid)
}

// rsaPublicKey decodes the base64url modulus and exponent
func (k jwk) rsaPublicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decoding modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decoding exponent: %w", err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
