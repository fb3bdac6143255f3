// Package api is the HTTP client for the bookly backend. One configured
// client, one accessor per resource, and all response-shape normalization
// behind it so views never branch on what the backend returned.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bookly/bookly-cli/config"
	"github.com/bookly/bookly-cli/log"
	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Session is the injected session state the client reads tokens from and
// caches the current profile into. *store.Store satisfies it.
type Session interface {
	Token() string
	CachedUser() *model.User
	SetCachedUser(*model.User) error
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	session    Session
	pageSize   int
}

func NewClient(baseURL string, session Session, timeout time.Duration) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %s", baseURL)
	}

	pageSize := 10
	if config.Opts != nil && config.Opts.PageSize > 0 {
		pageSize = config.Opts.PageSize
	}
	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		session:    session,
		pageSize:   pageSize,
	}, nil
}

// PageSize is the backend paginator size used for page-count math.
func (c *Client) PageSize() int {
	return c.pageSize
}

// skipAuth reports whether the request targets one of the endpoints that must
// go out without a bearer token: login, token refresh, and registration.
func skipAuth(method, path string) bool {
	if util.HasPrefixes(path, "token/") {
		return true
	}
	return method == http.MethodPost && path == "users/"
}

// do performs one backend call. path is relative to the base URL, query may
// be nil, body is JSON-encoded when non-nil, and a 2xx response body is
// decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL.JoinPath(path)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "unable to encode request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return errors.Wrap(err, "unable to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	requestID := util.GenUUID()
	req.Header.Set("X-Request-ID", requestID)

	if !skipAuth(method, path) {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "unable to read response of %s %s", method, path)
	}

	log.Debug("Request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "unexpected response shape from %s %s", method, path)
	}
	return nil
}

// currentUserID resolves the acting user's id, fetching the profile first
// when it is not already cached. Used to inject owner ids into payloads the
// backend does not fill in from the token.
func (c *Client) currentUserID(ctx context.Context) (int, error) {
	if user := c.session.CachedUser(); user != nil && user.ID != 0 {
		return user.ID, nil
	}
	user, err := c.Me(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "unable to resolve current user")
	}
	return user.ID, nil
}
