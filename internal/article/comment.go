package article

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/daniilsolovey/editorial/internal/fault"
)

const MaxCommentLength = 2000

// Selection anchors a comment to a range of the article text.
type Selection struct {
	Text  string
	Start int
	End   int
}

// Comment is a reviewer note on an article. It never affects the article status.
type Comment struct {
	ID         uuid.UUID
	ArticleID  uuid.UUID
	ReviewerID *uuid.UUID
	Body       string
	Selection  *Selection
	CreatedAt  time.Time
}

// CommentDraft holds the raw fields of a comment before validation.
type CommentDraft struct {
	Body          string  `json:"comment"`
	SelectedText  *string `json:"selectedText"`
	PositionStart *int    `json:"positionStart"`
	PositionEnd   *int    `json:"positionEnd"`
}

func (d CommentDraft) hasSelection() bool {
	return d.SelectedText != nil || d.PositionStart != nil || d.PositionEnd != nil
}

func (d CommentDraft) Validate() error {
	sel := d.hasSelection()
	bothPositions := d.PositionStart != nil && d.PositionEnd != nil

	return validation.ValidateStruct(&d,
		validation.Field(&d.Body,
			validation.Required,
			NotBlank,
			validation.RuneLength(1, MaxCommentLength),
		),
		validation.Field(&d.SelectedText,
			validation.When(sel, validation.NotNil.Error("is required when the comment is anchored to a selection")),
		),
		validation.Field(&d.PositionStart,
			validation.When(sel, validation.NotNil.Error("is required when the comment is anchored to a selection")),
			validation.Min(0),
		),
		validation.Field(&d.PositionEnd,
			validation.When(sel, validation.NotNil.Error("is required when the comment is anchored to a selection")),
			validation.When(bothPositions, validation.By(func(any) error {
				if *d.PositionEnd <= *d.PositionStart {
					return validation.NewError("validation_position_order", "must be greater than positionStart")
				}
				return nil
			})),
		),
	)
}

// NewComment validates the draft and builds an immutable comment.
func NewComment(id, articleID uuid.UUID, reviewerID *uuid.UUID, d CommentDraft, now time.Time) (Comment, error) {
	if err := d.Validate(); err != nil {
		return Comment{}, fault.Invalid(err)
	}

	c := Comment{
		ID:         id,
		ArticleID:  articleID,
		ReviewerID: reviewerID,
		Body:       d.Body,
		CreatedAt:  now,
	}
	if d.hasSelection() {
		c.Selection = &Selection{
			Text:  *d.SelectedText,
			Start: *d.PositionStart,
			End:   *d.PositionEnd,
		}
	}
	return c, nil
}
