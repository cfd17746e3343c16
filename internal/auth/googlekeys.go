package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"
)

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

// Google rotates signing keys on the order of days; refetching hourly keeps
// the cache fresh without hammering the endpoint.
const keyCacheTTL = time.Hour

// GoogleKeys fetches Google's published JWKS and caches the decoded RSA
// public keys by key id.
type GoogleKeys struct {
	client *http.Client
	url    string

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

func NewGoogleKeys() *GoogleKeys {
	return &GoogleKeys{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    googleJWKSURL,
	}
}

func (g *GoogleKeys) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if key, ok := g.keys[kid]; ok && time.Since(g.fetchedAt) < keyCacheTTL {
		return key, nil
	}

	if err := g.refresh(ctx); err != nil {
		return nil, err
	}

	key, ok := g.keys[kid]
	if !ok {
		return nil, fmt.Errorf("no signing key with id %q", kid)
	}

	return key, nil
}

type jwks struct {
	Keys []struct {
		Kty string `json:"kty"`
		Kid string `json:"kid"`
		N   string `json:"n"`
		E   string `json:"e"`
	} `json:"keys"`
}

func (g *GoogleKeys) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return fmt.Errorf("creating jwks request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching jwks: unexpected status %d", resp.StatusCode)
	}

	var set jwks
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("decoding jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))

	for _, k := range set.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}

		key, err := decodeRSAKey(k.N, k.E)
		if err != nil {
			return fmt.Errorf("decoding key %q: %w", k.Kid, err)
		}

		keys[k.Kid] = key
	}

	g.keys = keys
	g.fetchedAt = time.Now()

	return nil
}

func decodeRSAKey(n, e string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
