package planner

import (
	"context"
	"sync"
)

// TokenCache holds the bearer credential for one provider session. The
// provider does not report token expiry, so GetToken re-issues before
// every stage that needs a credential; refreshing is always safe, reusing
// a stale token is not. The cached value exists so callers can inspect
// the credential currently in force, not to skip issuance.
type TokenCache struct {
	Issuer       CredentialIssuer
	Provider     string
	ClientID     string
	ClientSecret string

	mu      sync.Mutex
	current string
}

// GetToken issues a fresh credential and caches it. An issuance failure
// is fatal to the planning run and is returned as an AuthError with the
// issuer's error detail attached; no retry is attempted here.
func (t *TokenCache) GetToken(ctx context.Context) (string, error) {
	token, err := t.Issuer.Issue(ctx, t.ClientID, t.ClientSecret)
	if err != nil {
		return "", &AuthError{Provider: t.Provider, Err: err}
	}
	t.mu.Lock()
	t.current = token
	t.mu.Unlock()
	return token, nil
}

// Current returns the most recently issued credential, or the empty
// string before the first successful issuance.
func (t *TokenCache) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
