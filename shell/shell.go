// Package shell decides what kind of session the process is running under
// before any command executes, and exposes guards for commands that need a
// logged-in or staff user.
package shell

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bookly/bookly-cli/log"
	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/store"
	"go.uber.org/zap"
)

type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateUser
	StateAdmin
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateUser:
		return "user"
	case StateAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// UserFetcher is the single backend call bootstrap needs.
type UserFetcher interface {
	Me(ctx context.Context) (*model.User, error)
}

type Shell struct {
	store   *store.Store
	fetcher UserFetcher

	mu    sync.Mutex
	state State
	user  *model.User
}

func New(st *store.Store, fetcher UserFetcher) *Shell {
	s := &Shell{store: st, fetcher: fetcher, state: StateUnknown}
	st.Subscribe(func(event store.SessionEvent) {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch event {
		case store.SessionLogin:
			// Force the next guard to re-resolve the user.
			s.state = StateUnknown
			s.user = nil
		case store.SessionLogout:
			s.state = StateAnonymous
			s.user = nil
		}
	})
	return s
}

func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Shell) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Bootstrap resolves the session state from the stored token. A missing,
// expired, or rejected token demotes the session to anonymous instead of
// failing, so commands that work logged-out still run.
func (s *Shell) Bootstrap(ctx context.Context) (State, error) {
	token := s.store.Token()
	if token == "" {
		return s.set(StateAnonymous, nil), nil
	}

	if expired(token) {
		log.Debug("Stored token is expired, clearing session")
		if err := s.store.ClearSession(); err != nil {
			return StateUnknown, errors.Wrap(err, "clear session")
		}
		return s.set(StateAnonymous, nil), nil
	}

	user, err := s.fetcher.Me(ctx)
	if err != nil {
		log.Debug("Stored token was rejected by the backend, clearing session",
			zap.Error(err),
		)
		if cerr := s.store.ClearSession(); cerr != nil {
			return StateUnknown, errors.Wrap(cerr, "clear session")
		}
		return s.set(StateAnonymous, nil), nil
	}

	if user.IsStaff {
		return s.set(StateAdmin, user), nil
	}
	return s.set(StateUser, user), nil
}

func (s *Shell) set(state State, user *model.User) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
	return state
}

// expired reports whether the token carries an exp claim that is in the
// past. The claim is read without signature verification, the backend remains
// the authority; the check only avoids a doomed round trip. A token that is
// not a JWT at all has unknown validity and is left for the backend probe to
// judge.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// RequireUser is a cobra pre-run that rejects anonymous invocations.
func (s *Shell) RequireUser(cmd *cobra.Command, _ []string) error {
	state, err := s.resolve(cmd.Context())
	if err != nil {
		return err
	}
	if state == StateAnonymous {
		return errors.New("not logged in, run \"bookly login\" first")
	}
	return nil
}

// RequireAdmin is a cobra pre-run that additionally rejects non-staff users.
func (s *Shell) RequireAdmin(cmd *cobra.Command, args []string) error {
	if err := s.RequireUser(cmd, args); err != nil {
		return err
	}
	if s.State() != StateAdmin {
		return errors.New("this command needs a staff account")
	}
	return nil
}

func (s *Shell) resolve(ctx context.Context) (State, error) {
	if state := s.State(); state != StateUnknown {
		return state, nil
	}
	return s.Bootstrap(ctx)
}
