package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/validator"
	"github.com/pkg/errors"
)

func (c *Client) ListDiscussions(ctx context.Context, search string) ([]model.Discussion, error) {
	var q url.Values
	if search != "" {
		q = url.Values{}
		q.Set("search", search)
	}

	var list model.List[model.Discussion]
	if err := c.do(ctx, http.MethodGet, "discussions/", q, nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

// GetDiscussion resolves one discussion by scanning the list. Not every
// backend version serves the item route, the list always works.
func (c *Client) GetDiscussion(ctx context.Context, id int) (*model.Discussion, error) {
	discussions, err := c.ListDiscussions(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range discussions {
		if discussions[i].ID == id {
			return &discussions[i], nil
		}
	}
	return nil, errors.Errorf("discussion %d not found", id)
}

func (c *Client) CreateDiscussion(ctx context.Context, req *model.DiscussionCreateRequest) (*model.Discussion, error) {
	if err := validator.ValidateDiscussionCreateRequest(req); err != nil {
		return nil, err
	}

	var discussion model.Discussion
	if err := c.do(ctx, http.MethodPost, "discussions/", nil, req, &discussion); err != nil {
		return nil, err
	}
	return &discussion, nil
}

func (c *Client) DeleteDiscussion(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, itemPath("discussions", id), nil, nil, nil)
}
