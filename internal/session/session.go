// Package session holds the client-side record of the authenticated user and
// their bearer token. The Session type is a pure snapshot; Store persists
// snapshots to durable storage and keeps the token under its own key so the
// API client can read it independently of the session record.
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/models"
	"github.com/tiendartesanal/tienda-cli/internal/state"
)

// Session is the complete authentication state at one point in time.
// User and Token are always set and cleared together.
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// IsAuthenticated reports whether both the user and the token are present.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// Store persists session snapshots. All mutations are synchronous: the
// returned snapshot is already durable when the call returns.
type Store struct {
	state   *state.Store
	current Session
}

// NewStore rehydrates the session from durable storage. A missing or
// unreadable snapshot yields the unauthenticated session rather than an
// error: stale local state never blocks startup.
func NewStore(st *state.Store) *Store {
	s := &Store{state: st}

	data, err := st.Get(state.SessionKey)
	if err != nil {
		if !errors.Is(err, state.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("failed to load session, starting unauthenticated")
		}
		return s
	}

	var snap Session
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn().Err(err).Msg("corrupt session snapshot, starting unauthenticated")
		return s
	}

	// Enforce the pairing invariant on rehydration: a half-written record
	// from an older client version degrades to unauthenticated.
	if !snap.IsAuthenticated() {
		snap = Session{}
	}

	s.current = snap
	return s
}

// Current returns the current snapshot.
func (s *Store) Current() Session {
	return s.current
}

// Login unconditionally replaces the user and token and persists both the
// session snapshot and the raw token under its own durable key.
func (s *Store) Login(user models.User, token string) (Session, error) {
	next := Session{User: &user, Token: token}

	if err := s.persist(next); err != nil {
		return s.current, err
	}
	if err := s.state.Put(state.TokenKey, []byte(token)); err != nil {
		return s.current, fmt.Errorf("failed to store token: %w", err)
	}

	s.current = next
	log.Debug().Str("username", user.Username).Msg("session established")
	return next, nil
}

// Logout clears the session and removes the durable token key. Logging out
// while already logged out is a no-op.
func (s *Store) Logout() (Session, error) {
	next := Session{}

	if err := s.persist(next); err != nil {
		return s.current, err
	}
	if err := s.state.Delete(state.TokenKey); err != nil {
		return s.current, err
	}

	s.current = next
	return next, nil
}

// SetUser replaces the user record only, leaving the token untouched. Used
// to refresh profile data without re-authenticating.
func (s *Store) SetUser(user models.User) (Session, error) {
	next := s.current
	next.User = &user

	if err := s.persist(next); err != nil {
		return s.current, err
	}

	s.current = next
	return next, nil
}

// Token re-reads the durable token at call time, so a login or logout
// between requests is honored immediately. Implements api.TokenSource.
func (s *Store) Token() (string, bool) {
	data, err := s.state.Get(state.TokenKey)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (s *Store) persist(snap Session) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.state.Put(state.SessionKey, data)
}
