package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bookly/bookly-cli/config"
	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, backend *testutil.Backend, session *testutil.FakeSession) *Client {
	t.Helper()
	client, err := NewClient(backend.BaseURL(), session, 5*time.Second)
	require.NoError(t, err)
	return client
}

func TestLoginSkipsAuthHeader(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Router.HandleFunc("/token/", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, model.TokenPair{Access: "a1", Refresh: "r1"})
	}).Methods(http.MethodPost)

	session := &testutil.FakeSession{AccessToken: "stale"}
	client := newTestClient(t, backend, session)

	tokens, err := client.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "a1", tokens.Access)
	assert.Equal(t, "r1", tokens.Refresh)

	last := backend.LastRequest()
	require.NotNil(t, last)
	assert.Empty(t, last.Authorization)
	assert.NotEmpty(t, last.RequestID)
	assert.JSONEq(t, `{"username":"alice","password":"pw"}`, string(last.Body))
}

func TestRegisterSkipsAuthHeader(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Router.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusCreated, model.User{ID: 9, Username: "alice"})
	}).Methods(http.MethodPost)

	session := &testutil.FakeSession{AccessToken: "stale"}
	client := newTestClient(t, backend, session)

	user, err := client.Register(context.Background(), &model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, user.ID)

	last := backend.LastRequest()
	require.NotNil(t, last)
	assert.Empty(t, last.Authorization)
}

func TestAuthenticatedCallAttachesBearerToken(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Router.HandleFunc("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, model.User{ID: 1, Username: "alice"})
	}).Methods(http.MethodGet)

	session := &testutil.FakeSession{AccessToken: "a1"}
	client := newTestClient(t, backend, session)

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	last := backend.LastRequest()
	require.NotNil(t, last)
	assert.Equal(t, "Bearer a1", last.Authorization)

	// Me caches the profile in the session.
	require.NotNil(t, session.CachedUser())
	assert.Equal(t, 1, session.CachedUser().ID)
}

func TestNoTokenMeansNoHeader(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Router.HandleFunc("/books/", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, []model.Book{})
	}).Methods(http.MethodGet)

	client := newTestClient(t, backend, &testutil.FakeSession{})

	_, err := client.ListBooks(context.Background(), nil)
	require.NoError(t, err)

	last := backend.LastRequest()
	require.NotNil(t, last)
	assert.Empty(t, last.Authorization)
}

func TestServerValidationErrorFlattened(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Router.HandleFunc("/reviews/", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusBadRequest, map[string]any{
			"rating": []string{"must be between 1 and 5"},
			"book":   []string{"does not exist"},
		})
	}).Methods(http.MethodPost)

	client := newTestClient(t, backend, &testutil.FakeSession{AccessToken: "a1"})

	_, err := client.CreateReview(context.Background(), &model.ReviewCreateRequest{
		Book: 99, Title: "t", Content: "c", Rating: 3,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "book: does not exist; rating: must be between 1 and 5")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.NotNil(t, apiErr.Payload)
}

func TestFlattenFieldErrors(t *testing.T) {
	cases := []struct {
		name     string
		payload  any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "not found", "not found"},
		{
			"field map",
			map[string]any{"username": []any{"required"}, "password": []any{"too short"}},
			"password: too short; username: required",
		},
		{
			"detail",
			map[string]any{"detail": "Invalid token"},
			"detail: Invalid token",
		},
		{
			"multiple messages per field",
			map[string]any{"price": []any{"must be a number", "too large"}},
			"price: must be a number, too large",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, FlattenFieldErrors(c.payload))
		})
	}
}

func TestListBooksQueryParams(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Router.HandleFunc("/books/", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, map[string]any{"count": 0, "results": []model.Book{}})
	}).Methods(http.MethodGet)

	client := newTestClient(t, backend, &testutil.FakeSession{})

	_, err := client.ListBooks(context.Background(), &ListBooksOptions{
		Search:   "dune",
		Genre:    "Sci-Fi",
		Ordering: "title",
		Page:     3,
	})
	require.NoError(t, err)

	last := backend.LastRequest()
	require.NotNil(t, last)
	assert.Contains(t, last.RawQuery, "search=dune")
	assert.Contains(t, last.RawQuery, "genre=Sci-Fi")
	assert.Contains(t, last.RawQuery, "ordering=title")
	assert.Contains(t, last.RawQuery, "page=3")
}

func TestTransportErrorSurfaces(t *testing.T) {
	session := &testutil.FakeSession{}
	client, err := NewClient("http://127.0.0.1:1/api/", session, 500*time.Millisecond)
	require.NoError(t, err)

	_, err = client.ListGenres(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not APIErrors")
}

func TestClientPageSizeFromConfig(t *testing.T) {
	config.GetDefaultOptions()
	config.Opts.PageSize = 25
	defer config.GetDefaultOptions()

	client, err := NewClient("http://localhost:8000/api/", &testutil.FakeSession{}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 25, client.PageSize())
}
