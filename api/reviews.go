package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/validator"
)

// ListBookReviews returns the reviews filtered to one book.
func (c *Client) ListBookReviews(ctx context.Context, bookID int) ([]model.Review, error) {
	q := url.Values{}
	q.Set("book", strconv.Itoa(bookID))

	var list model.List[model.Review]
	if err := c.do(ctx, http.MethodGet, "reviews/", q, nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *Client) ListReviews(ctx context.Context) ([]model.Review, error) {
	var list model.List[model.Review]
	if err := c.do(ctx, http.MethodGet, "reviews/", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *Client) CreateReview(ctx context.Context, req *model.ReviewCreateRequest) (*model.Review, error) {
	if err := validator.ValidateReviewCreateRequest(req); err != nil {
		return nil, err
	}

	var review model.Review
	if err := c.do(ctx, http.MethodPost, "reviews/", nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) UpdateReview(ctx context.Context, id int, fields map[string]any) (*model.Review, error) {
	var review model.Review
	if err := c.do(ctx, http.MethodPatch, itemPath("reviews", id), nil, fields, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) DeleteReview(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, itemPath("reviews", id), nil, nil, nil)
}
