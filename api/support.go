package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/validator"
)

func (c *Client) ListSupportTickets(ctx context.Context) ([]model.SupportTicket, error) {
	var list model.List[model.SupportTicket]
	if err := c.do(ctx, http.MethodGet, "support-tickets/", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

// CreateSupportTicket validates locally and injects the acting user's id,
// which this backend expects in the payload.
func (c *Client) CreateSupportTicket(ctx context.Context, req *model.TicketCreateRequest) (*model.SupportTicket, error) {
	if err := validator.ValidateTicketCreateRequest(req); err != nil {
		return nil, err
	}
	if req.User == 0 {
		userID, err := c.currentUserID(ctx)
		if err != nil {
			return nil, err
		}
		req.User = userID
	}

	var ticket model.SupportTicket
	if err := c.do(ctx, http.MethodPost, "support-tickets/", nil, req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) UpdateSupportTicket(ctx context.Context, id int, status model.TicketStatus) (*model.SupportTicket, error) {
	fields := map[string]any{"status": status}

	var ticket model.SupportTicket
	if err := c.do(ctx, http.MethodPatch, itemPath("support-tickets", id), nil, fields, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) ListTicketReplies(ctx context.Context, ticketID int) ([]model.TicketReply, error) {
	q := url.Values{}
	q.Set("ticket", strconv.Itoa(ticketID))

	var list model.List[model.TicketReply]
	if err := c.do(ctx, http.MethodGet, "ticket-replies/", q, nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

// CreateTicketReply accepts the body under either the current message field
// or the legacy content field and always sends message.
func (c *Client) CreateTicketReply(ctx context.Context, req *model.ReplyCreateRequest) (*model.TicketReply, error) {
	if err := validator.ValidateReplyCreateRequest(req); err != nil {
		return nil, err
	}
	if req.Message == "" {
		req.Message = req.Content
	}

	var reply model.TicketReply
	if err := c.do(ctx, http.MethodPost, "ticket-replies/", nil, req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
