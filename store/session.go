package store

import (
	"encoding/json"

	"github.com/bookly/bookly-cli/log"
	"github.com/bookly/bookly-cli/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SessionEvent is delivered to subscribers when the session changes, so
// components that render session state react without polling the store.
type SessionEvent int

const (
	SessionLogin SessionEvent = iota
	SessionLogout
)

// Subscribe registers a listener for session changes. Listeners run
// synchronously on the goroutine performing the change.
func (s *Store) Subscribe(fn func(SessionEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(event SessionEvent) {
	s.mu.Lock()
	subscribers := make([]func(SessionEvent), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(event)
	}
}

// Token returns the stored access token, empty when logged out.
func (s *Store) Token() string {
	token, _, err := s.Get(KeyToken)
	if err != nil {
		log.Error("Failed to read access token", zap.Error(err))
		return ""
	}
	return token
}

func (s *Store) RefreshToken() string {
	token, _, err := s.Get(KeyRefreshToken)
	if err != nil {
		log.Error("Failed to read refresh token", zap.Error(err))
		return ""
	}
	return token
}

// SetSession stores both tokens and notifies subscribers of the login.
func (s *Store) SetSession(access, refresh string) error {
	if err := s.Set(KeyToken, access); err != nil {
		return errors.Wrap(err, "unable to store access token")
	}
	if err := s.Set(KeyRefreshToken, refresh); err != nil {
		return errors.Wrap(err, "unable to store refresh token")
	}
	s.notify(SessionLogin)
	return nil
}

// ClearSession removes both tokens and the cached user blob. Called on logout
// and when bootstrap finds the stored token invalid.
func (s *Store) ClearSession() error {
	for _, key := range []string{KeyToken, KeyRefreshToken, KeyUser} {
		if err := s.Delete(key); err != nil {
			return errors.Wrapf(err, "unable to clear %s", key)
		}
	}
	s.userCache.Delete(KeyUser)
	s.notify(SessionLogout)
	return nil
}

// CachedUser returns the locally cached profile, nil when absent.
func (s *Store) CachedUser() *model.User {
	if cached, ok := s.userCache.Load(KeyUser); ok {
		return cached.(*model.User)
	}

	raw, ok, err := s.Get(KeyUser)
	if err != nil {
		log.Error("Failed to read cached user", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Warn("Discarding malformed cached user", zap.Error(err))
		return nil
	}
	s.userCache.Store(KeyUser, &user)
	return &user
}

func (s *Store) SetCachedUser(user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "unable to encode user")
	}
	if err := s.Set(KeyUser, string(raw)); err != nil {
		return errors.Wrap(err, "unable to store user")
	}
	s.userCache.Store(KeyUser, user)
	return nil
}
