package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bookly/bookly-cli/log"
	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/validator"
	"go.uber.org/zap"
)

// LikeOutcome distinguishes a like the backend confirmed from one the client
// only simulated because no likes endpoint exists on this backend version.
type LikeOutcome int

const (
	LikePersisted LikeOutcome = iota
	LikeSimulatedLocally
)

func (o LikeOutcome) Persisted() bool {
	return o == LikePersisted
}

func (c *Client) ListComments(ctx context.Context, discussionID int) ([]model.Comment, error) {
	q := url.Values{}
	q.Set("discussion", strconv.Itoa(discussionID))

	var list model.List[model.Comment]
	if err := c.do(ctx, http.MethodGet, "comments/", q, nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *Client) CreateComment(ctx context.Context, req *model.CommentCreateRequest) (*model.Comment, error) {
	if err := validator.ValidateCommentCreateRequest(req); err != nil {
		return nil, err
	}

	var comment model.Comment
	if err := c.do(ctx, http.MethodPost, "comments/", nil, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// LikeComment records a like. The likes endpoint has changed shape across
// backend versions: first the action route, then the sub-resource. When
// neither exists the like is reported as simulated so the view can still
// reflect it, clearly distinguished from a persisted write.
func (c *Client) LikeComment(ctx context.Context, commentID int) (LikeOutcome, error) {
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("comments/%d/like/", commentID), nil, nil, nil)
	if err == nil {
		return LikePersisted, nil
	}
	if !IsNotFound(err) {
		return 0, err
	}

	err = c.do(ctx, http.MethodPost, "comment-likes/", nil, map[string]int{"comment": commentID}, nil)
	if err == nil {
		return LikePersisted, nil
	}
	if !IsNotFound(err) {
		return 0, err
	}

	log.Warn("No likes endpoint on this backend, simulating like locally",
		zap.Int("comment_id", commentID),
	)
	return LikeSimulatedLocally, nil
}

// UnlikeComment removes a like through the same endpoint chain as
// LikeComment.
func (c *Client) UnlikeComment(ctx context.Context, commentID int) (LikeOutcome, error) {
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("comments/%d/unlike/", commentID), nil, nil, nil)
	if err == nil {
		return LikePersisted, nil
	}
	if !IsNotFound(err) {
		return 0, err
	}

	outcome, err := c.unlikeViaSubResource(ctx, commentID)
	if err == nil {
		return outcome, nil
	}
	if !IsNotFound(err) {
		return 0, err
	}

	log.Warn("No likes endpoint on this backend, simulating unlike locally",
		zap.Int("comment_id", commentID),
	)
	return LikeSimulatedLocally, nil
}

func (c *Client) unlikeViaSubResource(ctx context.Context, commentID int) (LikeOutcome, error) {
	q := url.Values{}
	q.Set("comment", strconv.Itoa(commentID))

	var likes model.List[struct {
		ID      int           `json:"id"`
		Comment model.FlexInt `json:"comment"`
	}]
	if err := c.do(ctx, http.MethodGet, "comment-likes/", q, nil, &likes); err != nil {
		return 0, err
	}

	for _, like := range likes.Results {
		if like.Comment.Int() == commentID {
			if err := c.do(ctx, http.MethodDelete, itemPath("comment-likes", like.ID), nil, nil, nil); err != nil {
				return 0, err
			}
			return LikePersisted, nil
		}
	}
	// Nothing to delete; the like was never persisted.
	return LikeSimulatedLocally, nil
}
