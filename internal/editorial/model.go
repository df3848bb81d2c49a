package editorial

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/fault"
)

var (
	requiredID = []validation.Rule{validation.Required, is.UUID}
	optionalID = []validation.Rule{validation.NilOrNotEmpty, is.UUID}
)

// parseID converts an already validated identifier.
func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fault.Invalid(validation.Errors{field: errors.New("must be a valid UUID")})
	}
	return id, nil
}

// mergeErrors combines the field maps of several validations into one.
func mergeErrors(errs ...error) error {
	merged := validation.Errors{}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var fields validation.Errors
		if !errors.As(err, &fields) {
			return err
		}
		for name, ferr := range fields {
			merged[name] = ferr
		}
	}
	return merged.Filter()
}

func parseOptionalID(field string, value *string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := parseID(field, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// ArticleResponse is the full public view of an article.
type ArticleResponse struct {
	ArticleID       string     `json:"articleId"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Slug            string     `json:"slug"`
	Status          string     `json:"status"`
	AuthorID        *string    `json:"authorId,omitempty"`
	ReviewerID      *string    `json:"reviewerId,omitempty"`
	SubmittedAt     *time.Time `json:"submittedAt,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	ApprovalReason  *string    `json:"approvalReason,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func NewArticleResponse(a article.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:       a.ID.String(),
		Title:           a.Title,
		Content:         a.Content,
		Slug:            a.Slug,
		Status:          a.Status.String(),
		AuthorID:        idString(a.AuthorID),
		ReviewerID:      idString(a.ReviewerID),
		SubmittedAt:     a.SubmittedAt,
		ReviewedAt:      a.ReviewedAt,
		PublishedAt:     a.PublishedAt,
		ApprovalReason:  a.ApprovalReason,
		RejectionReason: a.RejectionReason,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

type CommentResponse struct {
	CommentID     string    `json:"commentId"`
	ArticleID     string    `json:"articleId"`
	ReviewerID    *string   `json:"reviewerId,omitempty"`
	Comment       string    `json:"comment"`
	SelectedText  *string   `json:"selectedText,omitempty"`
	PositionStart *int      `json:"positionStart,omitempty"`
	PositionEnd   *int      `json:"positionEnd,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewCommentResponse(c article.Comment) CommentResponse {
	resp := CommentResponse{
		CommentID:  c.ID.String(),
		ArticleID:  c.ArticleID.String(),
		ReviewerID: idString(c.ReviewerID),
		Comment:    c.Body,
		CreatedAt:  c.CreatedAt,
	}
	if c.Selection != nil {
		text, start, end := c.Selection.Text, c.Selection.Start, c.Selection.End
		resp.SelectedText = &text
		resp.PositionStart = &start
		resp.PositionEnd = &end
	}
	return resp
}
