package validator // import "github.com/bookly/bookly-cli/validator"

import (
	"net/mail"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/util"
)

// Client-side contract checks that must fail before any network call is made.
// Rules mirror the backend's own validation so a doomed request never leaves
// the process.

// MaxPriceDigits mirrors the backend's price column width (max_digits=8).
const MaxPriceDigits = 8

func ValidateRegisterRequest(req *model.RegisterRequest) error {
	if req == nil {
		return errors.New("registration is nil")
	}
	if req.Username == "" {
		return errors.New("username is empty")
	}
	if req.Email == "" {
		return errors.New("email is empty")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return errors.New("email is invalid")
	}
	if req.Password == "" {
		return errors.New("password is empty")
	}
	if len(req.Password) < 6 {
		return errors.New("password is too short")
	}
	return nil
}

func ValidateReviewCreateRequest(req *model.ReviewCreateRequest) error {
	if req == nil {
		return errors.New("review is nil")
	}
	if req.Book == 0 {
		return errors.New("book is required")
	}
	if req.Title == "" {
		return errors.New("title is required")
	}
	if req.Content == "" {
		return errors.New("content is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

func ValidateOfferCreateRequest(req *model.OfferCreateRequest) error {
	if req == nil {
		return errors.New("offer is nil")
	}
	if req.Book == 0 {
		return errors.New("book is required")
	}
	if req.Condition == "" {
		return errors.New("condition is required")
	}
	switch req.ExchangeType {
	case model.ExchangeTypeExchange:
	case model.ExchangeTypeSell:
		if req.Price == "" {
			return errors.New("price is required for sell offers")
		}
		if _, err := strconv.ParseFloat(req.Price, 64); err != nil {
			return errors.New("price must be a number")
		}
		if util.CountDigits(req.Price) > MaxPriceDigits {
			return errors.Errorf("price has too many digits (limit %d)", MaxPriceDigits)
		}
	case "":
		return errors.New("exchange type is required")
	default:
		return errors.Errorf("unknown exchange type %q", req.ExchangeType)
	}
	return nil
}

func ValidateExchangeRequestCreate(req *model.ExchangeRequestCreate) error {
	if req == nil {
		return errors.New("request is nil")
	}
	if req.Offer == 0 {
		return errors.New("offer is required")
	}
	return nil
}

func ValidateTicketCreateRequest(req *model.TicketCreateRequest) error {
	if req == nil {
		return errors.New("ticket is nil")
	}
	if req.Subject == "" {
		return errors.New("subject is required")
	}
	if req.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

func ValidateReplyCreateRequest(req *model.ReplyCreateRequest) error {
	if req == nil {
		return errors.New("reply is nil")
	}
	if req.Ticket == 0 {
		return errors.New("ticket is required")
	}
	if req.Message == "" && req.Content == "" {
		return errors.New("message is required")
	}
	return nil
}

func ValidateDiscussionCreateRequest(req *model.DiscussionCreateRequest) error {
	if req == nil {
		return errors.New("discussion is nil")
	}
	if req.Title == "" {
		return errors.New("title is required")
	}
	if req.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

func ValidateCommentCreateRequest(req *model.CommentCreateRequest) error {
	if req == nil {
		return errors.New("comment is nil")
	}
	if req.Discussion == 0 {
		return errors.New("discussion is required")
	}
	if req.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

func ValidateShelfCreateRequest(req *model.ShelfCreateRequest) error {
	if req == nil {
		return errors.New("bookshelf is nil")
	}
	if req.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
