package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/validator"
)

type ListOffersOptions struct {
	Book int
}

func (o *ListOffersOptions) query() url.Values {
	if o == nil || o.Book == 0 {
		return nil
	}
	q := url.Values{}
	q.Set("book", strconv.Itoa(o.Book))
	return q
}

func (c *Client) ListExchangeOffers(ctx context.Context, opts *ListOffersOptions) ([]model.ExchangeOffer, error) {
	var list model.List[model.ExchangeOffer]
	if err := c.do(ctx, http.MethodGet, "exchange-offers/", opts.query(), nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

// CreateExchangeOffer validates the offer locally, injects the owner id when
// the caller left it unset, and posts it.
func (c *Client) CreateExchangeOffer(ctx context.Context, req *model.OfferCreateRequest) (*model.ExchangeOffer, error) {
	if err := validator.ValidateOfferCreateRequest(req); err != nil {
		return nil, err
	}
	if req.Owner == 0 {
		ownerID, err := c.currentUserID(ctx)
		if err != nil {
			return nil, err
		}
		req.Owner = ownerID
	}

	var offer model.ExchangeOffer
	if err := c.do(ctx, http.MethodPost, "exchange-offers/", nil, req, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (c *Client) UpdateExchangeOffer(ctx context.Context, id int, fields map[string]any) (*model.ExchangeOffer, error) {
	var offer model.ExchangeOffer
	if err := c.do(ctx, http.MethodPatch, itemPath("exchange-offers", id), nil, fields, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (c *Client) DeleteExchangeOffer(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, itemPath("exchange-offers", id), nil, nil, nil)
}

func (c *Client) ListExchangeRequests(ctx context.Context) ([]model.ExchangeRequest, error) {
	var list model.List[model.ExchangeRequest]
	if err := c.do(ctx, http.MethodGet, "exchange-requests/", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *Client) CreateExchangeRequest(ctx context.Context, req *model.ExchangeRequestCreate) (*model.ExchangeRequest, error) {
	if err := validator.ValidateExchangeRequestCreate(req); err != nil {
		return nil, err
	}

	var created model.ExchangeRequest
	if err := c.do(ctx, http.MethodPost, "exchange-requests/", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateExchangeRequest sets the request status (accept, reject, complete)
// with an optional message to the requester.
func (c *Client) UpdateExchangeRequest(ctx context.Context, id int, status model.ExchangeStatus, message string) (*model.ExchangeRequest, error) {
	fields := map[string]any{"status": status}
	if message != "" {
		fields["message"] = message
	}

	var updated model.ExchangeRequest
	if err := c.do(ctx, http.MethodPatch, itemPath("exchange-requests", id), nil, fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
