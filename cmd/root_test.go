package cmd

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bookly/bookly-cli/api"
)

func TestRenderErrorShowsValidationDetail(t *testing.T) {
	err := &api.APIError{
		StatusCode: 400,
		Payload: map[string]any{
			"rating": []any{"must be between 1 and 5"},
			"book":   []any{"does not exist"},
		},
	}

	assert.Equal(t, "book: does not exist; rating: must be between 1 and 5", renderError(err))
}

func TestRenderErrorHidesServerDetail(t *testing.T) {
	err := &api.APIError{StatusCode: 502, Raw: "<html>bad gateway</html>"}

	msg := renderError(err)
	assert.NotContains(t, msg, "bad gateway")
	assert.Contains(t, msg, "try again later")
}

func TestRenderErrorPassesLocalErrorsThrough(t *testing.T) {
	err := errors.New("price has too many digits (limit 8)")
	assert.Equal(t, "price has too many digits (limit 8)", renderError(err))
}

func TestRenderErrorWrappedAPIError(t *testing.T) {
	err := errors.Wrap(&api.APIError{
		StatusCode: 400,
		Payload:    map[string]any{"name": []any{"this field is required"}},
	}, "create bookshelf")

	assert.Equal(t, "name: this field is required", renderError(err))
}
