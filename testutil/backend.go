// Package testutil hosts an in-process stand-in for the bookly backend. Tests
// register the routes they need and assert on the requests the client made.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bookly/bookly-cli/model"
	"github.com/gorilla/mux"
)

// RecordedRequest is one request the fake backend received.
type RecordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	RequestID     string
	Body          []byte
}

type Backend struct {
	Router *mux.Router
	server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewBackend starts a fake backend under the /api/ prefix, mirroring the real
// deployment layout. It shuts down with the test.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{Router: mux.NewRouter()}
	root := mux.NewRouter()
	root.PathPrefix("/api/").Handler(http.StripPrefix("/api", b.record(b.Router)))

	b.server = httptest.NewServer(root)
	t.Cleanup(b.server.Close)
	return b
}

// BaseURL is the value to hand the client under test.
func (b *Backend) BaseURL() string {
	return b.server.URL + "/api/"
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          body,
		})
		b.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

// Requests returns a copy of everything received so far.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// RequestCount counts received requests, optionally filtered by method and
// path. Empty filters match everything.
func (b *Backend) RequestCount(method, path string) int {
	n := 0
	for _, req := range b.Requests() {
		if method != "" && req.Method != method {
			continue
		}
		if path != "" && req.Path != path {
			continue
		}
		n++
	}
	return n
}

// LastRequest returns the most recent request, nil when none arrived.
func (b *Backend) LastRequest() *RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return nil
	}
	req := b.requests[len(b.requests)-1]
	return &req
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// FakeSession is an in-memory Session for client tests.
type FakeSession struct {
	mu          sync.Mutex
	AccessToken string
	User        *model.User
}

func (s *FakeSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.AccessToken
}

func (s *FakeSession) CachedUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.User
}

func (s *FakeSession) SetCachedUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.User = user
	return nil
}
