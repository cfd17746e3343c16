package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid id token")

// Google issues tokens under both issuer forms.
var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// KeyProvider resolves the RSA public key for a token's key id.
type KeyProvider interface {
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

// Verifier validates Google ID tokens: RS256 signature against Google's
// published keys, audience equal to the configured OAuth client id, known
// issuer, and unexpired.
type Verifier struct {
	clientID string
	keys     KeyProvider
	parser   *jwt.Parser
}

func NewVerifier(clientID string, keys KeyProvider) *Verifier {
	return &Verifier{
		clientID: clientID,
		keys:     keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"RS256"}),
			jwt.WithAudience(clientID),
			jwt.WithExpirationRequired(),
		),
	}
}

type idTokenClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Verify checks the raw ID token and returns the identity it asserts.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (Identity, error) {
	var claims idTokenClaims

	_, err := v.parser.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token has no key id")
		}

		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !issuedByGoogle(claims.Issuer) {
		return Identity{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, claims.Issuer)
	}

	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return Identity{UserID: claims.Subject, Name: claims.Name}, nil
}

func issuedByGoogle(issuer string) bool {
	for _, iss := range googleIssuers {
		if issuer == iss {
			return true
		}
	}

	return false
}
