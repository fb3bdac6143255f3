package shell

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/store"
)

type stubFetcher struct {
	mu    sync.Mutex
	user  *model.User
	err   error
	calls int
}

func (f *stubFetcher) Me(_ context.Context) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := store.NewStore(db)
	require.NoError(t, err)
	return s
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestBootstrapNoToken(t *testing.T) {
	st := newTestStore(t)
	fetcher := &stubFetcher{user: &model.User{ID: 1}}
	sh := New(st, fetcher)

	state, err := sh.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state)
	assert.Zero(t, fetcher.callCount(), "no backend call without a token")
}

func TestBootstrapExpiredTokenClearsSession(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SetSession(signedToken(t, time.Now().Add(-time.Hour)), "r1"))

	fetcher := &stubFetcher{user: &model.User{ID: 1}}
	sh := New(st, fetcher)

	state, err := sh.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state)
	assert.Empty(t, st.Token())
	assert.Empty(t, st.RefreshToken())
	assert.Zero(t, fetcher.callCount(), "expired token must not reach the backend")
}

func TestBootstrapOpaqueTokenProbesBackend(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SetSession("opaque-session-token", "r1"))

	fetcher := &stubFetcher{user: &model.User{ID: 1, Username: "alice"}}
	sh := New(st, fetcher)

	state, err := sh.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateUser, state)
	assert.Equal(t, 1, fetcher.callCount(), "non-JWT tokens have unknown validity, only the backend can judge them")
	assert.Equal(t, "opaque-session-token", st.Token(), "an accepted token must survive bootstrap")
}

func TestBootstrapOpaqueTokenRejectedClearsSession(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SetSession("opaque-session-token", "r1"))

	fetcher := &stubFetcher{err: assert.AnError}
	sh := New(st, fetcher)

	state, err := sh.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state)
	assert.Equal(t, 1, fetcher.callCount())
	assert.Empty(t, st.Token())
	assert.Empty(t, st.RefreshToken())
}

func TestBootstrapRejectedTokenClearsSession(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SetSession(signedToken(t, time.Now().Add(time.Hour)), "r1"))

	sh := New(st, &stubFetcher{err: assert.AnError})

	state, err := sh.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state)
	assert.Empty(t, st.Token())
	assert.Empty(t, st.RefreshToken())
}

func TestBootstrapResolvesUserAndAdmin(t *testing.T) {
	tests := []struct {
		name  string
		user  *model.User
		state State
	}{
		{"regular user", &model.User{ID: 1, Username: "alice"}, StateUser},
		{"staff user", &model.User{ID: 2, Username: "root", IsStaff: true}, StateAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			require.NoError(t, st.SetSession(signedToken(t, time.Now().Add(time.Hour)), "r1"))

			sh := New(st, &stubFetcher{user: tt.user})

			state, err := sh.Bootstrap(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.state, state)
			require.NotNil(t, sh.User())
			assert.Equal(t, tt.user.Username, sh.User().Username)
		})
	}
}

func TestGuards(t *testing.T) {
	st := newTestStore(t)
	fetcher := &stubFetcher{user: &model.User{ID: 1}}
	sh := New(st, fetcher)

	cmd := &cobra.Command{Use: "probe"}
	cmd.SetContext(context.Background())

	// Anonymous rejects both guards.
	assert.Error(t, sh.RequireUser(cmd, nil))
	assert.Error(t, sh.RequireAdmin(cmd, nil))

	// Logged in as a regular user.
	require.NoError(t, st.SetSession(signedToken(t, time.Now().Add(time.Hour)), "r1"))
	assert.NoError(t, sh.RequireUser(cmd, nil))
	assert.Error(t, sh.RequireAdmin(cmd, nil))

	// Promoted to staff on the next login.
	fetcher.mu.Lock()
	fetcher.user = &model.User{ID: 1, IsStaff: true}
	fetcher.mu.Unlock()
	require.NoError(t, st.SetSession(signedToken(t, time.Now().Add(time.Hour)), "r1"))
	assert.NoError(t, sh.RequireAdmin(cmd, nil))
}

func TestLogoutEventDemotesState(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SetSession(signedToken(t, time.Now().Add(time.Hour)), "r1"))

	sh := New(st, &stubFetcher{user: &model.User{ID: 1}})
	_, err := sh.Bootstrap(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateUser, sh.State())

	require.NoError(t, st.ClearSession())
	assert.Equal(t, StateAnonymous, sh.State())
}

func TestLoginEventForcesReResolve(t *testing.T) {
	st := newTestStore(t)
	fetcher := &stubFetcher{user: &model.User{ID: 1}}
	sh := New(st, fetcher)

	_, err := sh.Bootstrap(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateAnonymous, sh.State())

	require.NoError(t, st.SetSession(signedToken(t, time.Now().Add(time.Hour)), "r1"))
	assert.Equal(t, StateUnknown, sh.State())

	cmd := &cobra.Command{Use: "probe"}
	cmd.SetContext(context.Background())
	require.NoError(t, sh.RequireUser(cmd, nil))
	assert.Equal(t, StateUser, sh.State())
	assert.Equal(t, 1, fetcher.callCount())
}
