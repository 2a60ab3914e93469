// Package session persists the signed-in identity under one canonical key
// per concept.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iliyamo/renttrack/internal/kv"
	"github.com/iliyamo/renttrack/internal/model"
)

// Canonical storage keys.
const (
	TokenKey    = "renttrack_token"
	UserKey     = "renttrack_user"
	SettingsKey = "renttrack_settings"
)

// Session reads and writes auth state in a kv.Store.
type Session struct {
	store kv.Store
}

// New returns a session over store.
func New(store kv.Store) *Session {
	return &Session{store: store}
}

// Store returns the underlying key-value store.
func (s *Session) Store() kv.Store { return s.store }

// SaveAuth persists the token and the user blob.
func (s *Session) SaveAuth(ctx context.Context, auth model.AuthResult) error {
	b, err := json.Marshal(auth.User)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.store.Set(ctx, TokenKey, auth.Token); err != nil {
		return fmt.Errorf("session: save token: %w", err)
	}
	if err := s.store.Set(ctx, UserKey, string(b)); err != nil {
		return fmt.Errorf("session: save user: %w", err)
	}
	return nil
}

// Clear removes the token and the user blob.
func (s *Session) Clear(ctx context.Context) error {
	return errors.Join(s.store.Delete(ctx, TokenKey), s.store.Delete(ctx, UserKey))
}

// Token returns the stored token, or "" when signed out.
func (s *Session) Token(ctx context.Context) (string, error) {
	v, err := s.store.Get(ctx, TokenKey)
	if errors.Is(err, kv.ErrMissing) {
		return "", nil
	}
	return v, err
}

// User returns the stored user blob.  ok is false when none is stored.
func (s *Session) User(ctx context.Context) (u model.User, ok bool, err error) {
	v, err := s.store.Get(ctx, UserKey)
	if errors.Is(err, kv.ErrMissing) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	if err := json.Unmarshal([]byte(v), &u); err != nil {
		return model.User{}, false, fmt.Errorf("session: decode user: %w", err)
	}
	return u, true, nil
}
