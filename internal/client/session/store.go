// Package session owns the authenticated session: the bearer token plus the
// cached user profile. The token is the only piece of durable client state.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/repositories/state"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// tokenKey is the single durable slot.
const tokenKey = "session_token"

// ProfileFetcher loads the profile belonging to the current token.
// api.Client satisfies it.
type ProfileFetcher interface {
	Me(ctx context.Context) (*models.UserProfile, error)
}

// Store holds the session for one client process. It is an explicit
// dependency, passed to whoever needs auth state; there is no package-level
// instance. Not safe for concurrent use — the client drives it from a single
// goroutine.
type Store struct {
	repo state.Repository
	log  logging.Logger

	token     string
	user      *models.UserProfile
	expiresAt time.Time
}

func NewStore(repo state.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("component", "session")}
}

// Init loads the persisted token, if any. A token whose embedded expiry is
// already past is discarded immediately — there is no point presenting it.
func (s *Store) Init(ctx context.Context) error {
	token, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if token == "" {
		return nil
	}

	exp, ok := tokenExpiry(token)
	if ok && time.Now().After(exp) {
		s.log.Info(ctx, "stored token expired, discarding")
		return s.repo.Delete(ctx, tokenKey)
	}

	s.token = token
	s.expiresAt = exp
	return nil
}

// Set replaces the session with a fresh token and profile, persisting the
// token. The previous session, if any, is gone after this.
func (s *Store) Set(ctx context.Context, token string, user *models.UserProfile) error {
	if err := s.repo.Set(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.token = token
	s.user = user
	s.expiresAt, _ = tokenExpiry(token)
	return nil
}

// Clear drops the session from memory and durable storage.
func (s *Store) Clear(ctx context.Context) error {
	s.token = ""
	s.user = nil
	s.expiresAt = time.Time{}
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token returns the current bearer token, or "" when logged out.
// Satisfies api.TokenSource.
func (s *Store) Token() string { return s.token }

// User returns the cached profile, or nil when none has been fetched.
func (s *Store) User() *models.UserProfile { return s.user }

// SetUser replaces the cached profile. Only server responses should be
// passed here; the client never fabricates profile data.
func (s *Store) SetUser(user *models.UserProfile) { s.user = user }

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool { return s.token != "" }

// ExpiresAt returns the token's expiry claim, zero when the token carries
// none (opaque tokens are accepted as-is).
func (s *Store) ExpiresAt() time.Time { return s.expiresAt }

// Refresh fetches the profile when a token is present but no user is cached
// (typically right after Init). A fetch failure of any kind invalidates the
// whole session: the store clears itself and returns the error. This is the
// only place the client logs a user out without being asked to.
func (s *Store) Refresh(ctx context.Context, fetch ProfileFetcher) error {
	if s.token == "" || s.user != nil {
		return nil
	}

	user, err := fetch.Me(ctx)
	if err != nil {
		s.log.Info(ctx, "profile refresh failed, clearing session", "err", err)
		if clearErr := s.Clear(ctx); clearErr != nil {
			return clearErr
		}
		return err
	}

	s.user = user
	return nil
}

// tokenExpiry extracts the exp claim without validating the signature — the
// client has no key and only wants the timestamp for display and for
// skipping obviously dead tokens. Returns ok=false for opaque tokens.
func tokenExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	_, _ = jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return nil, nil },
		jwt.WithoutClaimsValidation(),
	)
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
