package editorial

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/fault"
)

type ApproveArticleRequest struct {
	ArticleID  string  `json:"articleId"`
	ReviewerID string  `json:"reviewerId"`
	Reason     *string `json:"reason"`
}

func NewApproveArticleRequest(articleID, reviewerID string, reason *string) (ApproveArticleRequest, error) {
	r := ApproveArticleRequest{ArticleID: articleID, ReviewerID: reviewerID, Reason: reason}
	return r, fault.Invalid(r.Validate())
}

func (r ApproveArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, requiredID...),
		validation.Field(&r.ReviewerID, requiredID...),
		validation.Field(&r.Reason, validation.RuneLength(0, article.MaxReasonLength)),
	)
}

type RejectArticleRequest struct {
	ArticleID  string `json:"articleId"`
	ReviewerID string `json:"reviewerId"`
	Reason     string `json:"reason"`
}

func NewRejectArticleRequest(articleID, reviewerID, reason string) (RejectArticleRequest, error) {
	r := RejectArticleRequest{ArticleID: articleID, ReviewerID: reviewerID, Reason: reason}
	return r, fault.Invalid(r.Validate())
}

func (r RejectArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, requiredID...),
		validation.Field(&r.ReviewerID, requiredID...),
		validation.Field(&r.Reason,
			validation.Required,
			article.NotBlank,
			validation.RuneLength(1, article.MaxReasonLength),
		),
	)
}

// ReviewResponse is returned by both review decisions.
type ReviewResponse struct {
	ArticleID  string    `json:"articleId"`
	ReviewerID string    `json:"reviewerId"`
	Status     string    `json:"status"`
	ReviewedAt time.Time `json:"reviewedAt"`
	Reason     *string   `json:"reason,omitempty"`
}

type approveArticle struct{ *deps }

func (p *approveArticle) Process(ctx context.Context, req ApproveArticleRequest) (ReviewResponse, error) {
	decision, err := article.Approve(req.Reason)
	if err != nil {
		return ReviewResponse{}, err
	}
	return p.review(ctx, req.ArticleID, req.ReviewerID, decision)
}

type rejectArticle struct{ *deps }

func (p *rejectArticle) Process(ctx context.Context, req RejectArticleRequest) (ReviewResponse, error) {
	decision, err := article.Reject(req.Reason)
	if err != nil {
		return ReviewResponse{}, err
	}
	return p.review(ctx, req.ArticleID, req.ReviewerID, decision)
}

func (d *deps) review(ctx context.Context, articleID, reviewerID string, decision article.ReviewDecision) (ReviewResponse, error) {
	id, err := parseID("articleId", articleID)
	if err != nil {
		return ReviewResponse{}, err
	}
	reviewer, err := parseID("reviewerId", reviewerID)
	if err != nil {
		return ReviewResponse{}, err
	}

	current, err := d.load(ctx, id)
	if err != nil {
		return ReviewResponse{}, err
	}

	next, err := current.Review(reviewer, decision, d.timestamp())
	if err != nil {
		return ReviewResponse{}, err
	}
	if err := d.save(ctx, next); err != nil {
		return ReviewResponse{}, err
	}

	return newReviewResponse(next, reviewer), nil
}

func newReviewResponse(a article.Article, reviewer uuid.UUID) ReviewResponse {
	resp := ReviewResponse{
		ArticleID:  a.ID.String(),
		ReviewerID: reviewer.String(),
		Status:     a.Status.String(),
		ReviewedAt: *a.ReviewedAt,
		Reason:     a.ApprovalReason,
	}
	if a.Status == article.StatusRejected {
		resp.Reason = a.RejectionReason
	}
	return resp
}
