package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bookly/bookly-cli/model"
)

func itemPath(resource string, id int) string {
	return fmt.Sprintf("%s/%d/", resource, id)
}

type ListBooksOptions struct {
	Search   string
	Genre    string
	Ordering string
	Page     int
}

func (o *ListBooksOptions) query() url.Values {
	if o == nil {
		return nil
	}
	q := url.Values{}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Genre != "" {
		q.Set("genre", o.Genre)
	}
	if o.Ordering != "" {
		q.Set("ordering", o.Ordering)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

func (c *Client) ListBooks(ctx context.Context, opts *ListBooksOptions) (*model.List[model.Book], error) {
	var list model.List[model.Book]
	if err := c.do(ctx, http.MethodGet, "books/", opts.query(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetBook(ctx context.Context, id int) (*model.Book, error) {
	var book model.Book
	if err := c.do(ctx, http.MethodGet, itemPath("books", id), nil, nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	var created model.Book
	if err := c.do(ctx, http.MethodPost, "books/", nil, book, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int, fields map[string]any) (*model.Book, error) {
	var updated model.Book
	if err := c.do(ctx, http.MethodPatch, itemPath("books", id), nil, fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, itemPath("books", id), nil, nil, nil)
}

func (c *Client) ListGenres(ctx context.Context) ([]model.Genre, error) {
	var list model.List[model.Genre]
	if err := c.do(ctx, http.MethodGet, "genres/", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}
