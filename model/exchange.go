package model

import (
	"bytes"
	"encoding/json"
)

type ExchangeType string

const (
	ExchangeTypeExchange ExchangeType = "EXCHANGE"
	ExchangeTypeSell     ExchangeType = "SELL"
)

type ExchangeStatus string

const (
	ExchangeStatusPending   ExchangeStatus = "PENDING"
	ExchangeStatusAccepted  ExchangeStatus = "ACCEPTED"
	ExchangeStatusCompleted ExchangeStatus = "COMPLETED"
	ExchangeStatusRejected  ExchangeStatus = "REJECTED"
)

type ExchangeOffer struct {
	ID                  int            `json:"id"`
	BookID              FlexInt        `json:"book"`
	BookTitle           string         `json:"book_title,omitempty"`
	OwnerID             FlexInt        `json:"owner"`
	OwnerUsername       string         `json:"owner_username,omitempty"`
	Condition           string         `json:"condition"`
	ExchangeType        ExchangeType   `json:"exchange_type"`
	Price               string         `json:"price,omitempty"`
	ExchangePreferences string         `json:"exchange_preferences,omitempty"`
	Status              ExchangeStatus `json:"status,omitempty"`
	CreatedAt           string         `json:"created_at,omitempty"`
}

// OfferRef is the offer reference inside an exchange request. Some backend
// versions serialize it as a bare id, others as a nested offer object.
type OfferRef struct {
	ID            int
	OwnerID       int
	OwnerUsername string
}

func (o *OfferRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = OfferRef{}
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			ID            FlexInt `json:"id"`
			Owner         FlexInt `json:"owner"`
			OwnerUsername string  `json:"owner_username"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*o = OfferRef{ID: obj.ID.Int(), OwnerID: obj.Owner.Int(), OwnerUsername: obj.OwnerUsername}
		return nil
	}
	var id FlexInt
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	*o = OfferRef{ID: id.Int()}
	return nil
}

func (o OfferRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.ID)
}

type ExchangeRequest struct {
	ID                int            `json:"id"`
	Offer             OfferRef       `json:"offer"`
	BookTitle         string         `json:"book_title,omitempty"`
	RequesterID       FlexInt        `json:"requester"`
	RequesterUsername string         `json:"requester_username,omitempty"`
	Message           string         `json:"message,omitempty"`
	Status            ExchangeStatus `json:"status,omitempty"`
	CreatedAt         string         `json:"created_at,omitempty"`
}

// SplitExchangeRequests partitions requests into the incoming and outgoing
// views per the documented backend contract: incoming holds requests whose
// requester differs from the offer owner, outgoing holds requests whose
// requester equals the offer owner.
// TODO: confirm with product whether outgoing should instead hold the current
// user's requests against other owners' offers; the contract as written keeps
// a request you made on your own offer in the outgoing view.
func SplitExchangeRequests(requests []ExchangeRequest) (incoming, outgoing []ExchangeRequest) {
	for _, req := range requests {
		if req.Offer.ID != 0 && req.RequesterID.Int() != req.Offer.OwnerID {
			incoming = append(incoming, req)
			continue
		}
		if req.RequesterID.Int() == req.Offer.OwnerID {
			outgoing = append(outgoing, req)
		}
	}
	return incoming, outgoing
}
