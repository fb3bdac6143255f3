package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// APIError carries a non-2xx backend response: the status and the decoded
// body, so callers can render the server's validation payload.
type APIError struct {
	StatusCode int
	Payload    any
	Raw        string
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Raw: string(body)}
	if len(body) > 0 {
		var payload any
		if err := json.Unmarshal(body, &payload); err == nil {
			apiErr.Payload = payload
		}
	}
	return apiErr
}

func (e *APIError) Error() string {
	msg := FlattenFieldErrors(e.Payload)
	if msg == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, msg)
}

// IsNotFound reports whether err is a backend 404. The comment like/unlike
// fallback chain keys off this.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized reports whether err is a backend 401, the session-invalid
// signal bootstrap reacts to.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// FlattenFieldErrors renders a structured validation payload as one readable
// string: "field: message; field: message". Fields are sorted so the output
// is stable. Non-map payloads render as themselves.
func FlattenFieldErrors(payload any) string {
	switch v := payload.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, flattenValue(v[k])))
		}
		return strings.Join(parts, "; ")
	default:
		return flattenValue(v)
	}
}

func flattenValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, flattenValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
