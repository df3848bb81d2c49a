package editorial

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/daniilsolovey/editorial/internal/fault"
)

type SubmitForReviewRequest struct {
	ArticleID string  `json:"articleId"`
	AuthorID  *string `json:"authorId,omitempty"`
}

func NewSubmitForReviewRequest(articleID string, authorID *string) (SubmitForReviewRequest, error) {
	r := SubmitForReviewRequest{ArticleID: articleID, AuthorID: authorID}
	return r, fault.Invalid(r.Validate())
}

func (r SubmitForReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, requiredID...),
		validation.Field(&r.AuthorID, optionalID...),
	)
}

type SubmitForReviewResponse struct {
	ArticleID   string    `json:"articleId"`
	AuthorID    *string   `json:"authorId,omitempty"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type submitForReview struct{ *deps }

func (p *submitForReview) Process(ctx context.Context, req SubmitForReviewRequest) (SubmitForReviewResponse, error) {
	id, err := parseID("articleId", req.ArticleID)
	if err != nil {
		return SubmitForReviewResponse{}, err
	}
	authorID, err := parseOptionalID("authorId", req.AuthorID)
	if err != nil {
		return SubmitForReviewResponse{}, err
	}

	current, err := p.load(ctx, id)
	if err != nil {
		return SubmitForReviewResponse{}, err
	}

	next, err := current.Submit(authorID, p.timestamp())
	if err != nil {
		return SubmitForReviewResponse{}, err
	}
	if err := p.save(ctx, next); err != nil {
		return SubmitForReviewResponse{}, err
	}

	return SubmitForReviewResponse{
		ArticleID:   next.ID.String(),
		AuthorID:    idString(next.AuthorID),
		Status:      next.Status.String(),
		SubmittedAt: *next.SubmittedAt,
	}, nil
}
