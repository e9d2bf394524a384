// internal/domain/session/store.go
package session

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
)

// AuthAPI is the slice of the commerce API the session store depends on
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, req commerce.RegisterRequest) error
	CurrentUser(ctx context.Context, token string) (*commerce.User, error)
	UpdateCurrentUser(ctx context.Context, token string, update commerce.UserUpdate) (*commerce.User, error)
}

// UserChangeFunc is invoked when the session's user identity transitions.
// The user is nil after logout or a failed hydration.
type UserChangeFunc func(ctx context.Context, user *commerce.User)

// Store is the single source of truth for "who is logged in" within one
// browser session. It holds the user record in memory and delegates token
// persistence to a TokenStore, so the authenticated state survives across
// page loads while the in-memory part is rebuilt per request.
//
// Operations are not queued or de-duplicated; two concurrent logins race and
// the last response wins. That matches the upstream behavior and is accepted.
type Store struct {
	id     string
	phase  Phase
	user   *commerce.User
	token  string
	tokens TokenStore
	api    AuthAPI
	logger *logrus.Logger

	onUserChange []UserChangeFunc
}

// NewStore creates a session store for the given browser session ID.
// The store starts empty in PhaseUninitialized; call Hydrate before reading
// User.
func NewStore(id string, tokens TokenStore, api AuthAPI, logger *logrus.Logger) *Store {
	return &Store{
		id:     id,
		phase:  PhaseUninitialized,
		tokens: tokens,
		api:    api,
		logger: logger,
	}
}

// ID returns the browser session ID
func (s *Store) ID() string {
	return s.id
}

// Phase returns the store's initialization phase
func (s *Store) Phase() Phase {
	return s.phase
}

// User returns the authenticated user, or nil when unauthenticated
func (s *Store) User() *commerce.User {
	return s.user
}

// Token returns the bearer token validated in the current hydration cycle.
// Empty when unauthenticated.
func (s *Store) Token() string {
	return s.token
}

// OnUserChange registers a callback fired whenever the user identity
// transitions (login, logout, failed hydration of a stale token).
func (s *Store) OnUserChange(fn UserChangeFunc) {
	s.onUserChange = append(s.onUserChange, fn)
}

// Hydrate resolves the persisted token into a live user record. A missing
// token leaves the store unauthenticated. Any remote failure while a token
// is present is treated as an invalid or expired token: the token is
// discarded and the store ends up unauthenticated. Hydration failures are
// logged, never surfaced, since this runs before any user interaction.
func (s *Store) Hydrate(ctx context.Context) {
	s.phase = PhaseHydrating
	defer func() { s.phase = PhaseReady }()

	token, err := s.tokens.Get(ctx, s.id)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", s.id).Warn("Failed to load persisted token")
		return
	}
	if token == "" {
		return
	}

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", s.id).Info("Discarding invalid session token")
		if delErr := s.tokens.Delete(ctx, s.id); delErr != nil {
			s.logger.WithError(delErr).WithField("session_id", s.id).Warn("Failed to discard session token")
		}
		return
	}

	s.token = token
	s.setUser(ctx, user)
}

// Login exchanges credentials for a token, persists it, then immediately
// fetches the user record to populate the store. On failure no token is
// stored and the error is returned for the page to display.
func (s *Store) Login(ctx context.Context, username, password string) error {
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := s.tokens.Save(ctx, s.id, token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		// Token was accepted moments ago; treat a failure here like a failed
		// hydration and surface it so the login page can report it.
		if delErr := s.tokens.Delete(ctx, s.id); delErr != nil {
			s.logger.WithError(delErr).WithField("session_id", s.id).Warn("Failed to discard session token")
		}
		return err
	}

	s.token = token
	s.setUser(ctx, user)
	return nil
}

// Register creates a new account. It does not authenticate; callers decide
// the next step, typically a redirect to the login page.
func (s *Store) Register(ctx context.Context, req commerce.RegisterRequest) error {
	return s.api.Register(ctx, req)
}

// Logout discards the persisted token and clears the user. No remote call
// is needed under the stateless bearer token scheme.
func (s *Store) Logout(ctx context.Context) {
	if err := s.tokens.Delete(ctx, s.id); err != nil {
		s.logger.WithError(err).WithField("session_id", s.id).Warn("Failed to discard session token")
	}
	s.token = ""
	s.setUser(ctx, nil)
}

// UpdateUser patches the profile remotely and, on success, replaces the
// local user with the server's returned representation. The server is
// authoritative for final field values.
func (s *Store) UpdateUser(ctx context.Context, update commerce.UserUpdate) error {
	if s.user == nil {
		return fmt.Errorf("not authenticated")
	}

	user, err := s.api.UpdateCurrentUser(ctx, s.token, update)
	if err != nil {
		return err
	}

	// Same identity, so no cart resync is triggered.
	s.setUser(ctx, user)
	return nil
}

// setUser replaces the user record and notifies observers when the identity
// actually transitions (nil to present, present to nil, or a different ID).
func (s *Store) setUser(ctx context.Context, user *commerce.User) {
	prev := s.user
	s.user = user

	if sameIdentity(prev, user) {
		return
	}
	for _, fn := range s.onUserChange {
		fn(ctx, user)
	}
}

func sameIdentity(a, b *commerce.User) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}
