package editorial

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/fault"
)

type AddCommentRequest struct {
	ArticleID     string  `json:"articleId"`
	ReviewerID    *string `json:"reviewerId,omitempty"`
	Comment       string  `json:"comment"`
	SelectedText  *string `json:"selectedText,omitempty"`
	PositionStart *int    `json:"positionStart,omitempty"`
	PositionEnd   *int    `json:"positionEnd,omitempty"`
}

func (r AddCommentRequest) Validate() error {
	return mergeErrors(
		validation.ValidateStruct(&r,
			validation.Field(&r.ArticleID, requiredID...),
			validation.Field(&r.ReviewerID, optionalID...),
		),
		r.draft().Validate(),
	)
}

func (r AddCommentRequest) draft() article.CommentDraft {
	return article.CommentDraft{
		Body:          r.Comment,
		SelectedText:  r.SelectedText,
		PositionStart: r.PositionStart,
		PositionEnd:   r.PositionEnd,
	}
}

type addComment struct{ *deps }

func (p *addComment) Process(ctx context.Context, req AddCommentRequest) (CommentResponse, error) {
	articleID, err := parseID("articleId", req.ArticleID)
	if err != nil {
		return CommentResponse{}, err
	}
	reviewerID, err := parseOptionalID("reviewerId", req.ReviewerID)
	if err != nil {
		return CommentResponse{}, err
	}

	if _, err := p.load(ctx, articleID); err != nil {
		return CommentResponse{}, err
	}

	c, err := article.NewComment(p.newID(), articleID, reviewerID, req.draft(), p.timestamp())
	if err != nil {
		return CommentResponse{}, err
	}
	if err := p.repo.SaveComment(ctx, c); err != nil {
		return CommentResponse{}, fmt.Errorf("repo save comment: %w", err)
	}

	return NewCommentResponse(c), nil
}

type ListCommentsRequest struct {
	ArticleID string `json:"articleId"`
}

func (r ListCommentsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, requiredID...),
	)
}

type ListCommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
}

type listComments struct{ *deps }

func (p *listComments) Process(ctx context.Context, req ListCommentsRequest) (ListCommentsResponse, error) {
	articleID, err := parseID("articleId", req.ArticleID)
	if err != nil {
		return ListCommentsResponse{}, err
	}

	if _, err := p.load(ctx, articleID); err != nil {
		return ListCommentsResponse{}, err
	}

	list, err := p.repo.CommentsByArticle(ctx, articleID)
	if err != nil {
		return ListCommentsResponse{}, fmt.Errorf("repo get comments: %w", err)
	}

	resp := ListCommentsResponse{Comments: make([]CommentResponse, len(list))}
	for i := range list {
		resp.Comments[i] = NewCommentResponse(list[i])
	}
	return resp, nil
}

type DeleteCommentRequest struct {
	CommentID string `json:"commentId"`
}

func (r DeleteCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CommentID, requiredID...),
	)
}

type DeleteCommentResponse struct {
	CommentID string `json:"commentId"`
}

type deleteComment struct{ *deps }

func (p *deleteComment) Process(ctx context.Context, req DeleteCommentRequest) (DeleteCommentResponse, error) {
	id, err := parseID("commentId", req.CommentID)
	if err != nil {
		return DeleteCommentResponse{}, err
	}

	c, err := p.repo.CommentByID(ctx, id)
	if err != nil {
		return DeleteCommentResponse{}, fmt.Errorf("repo get comment: %w", err)
	}
	if c == nil {
		return DeleteCommentResponse{}, fmt.Errorf("comment %s: %w", id, fault.ErrNotFound)
	}
	if err := p.repo.RemoveComment(ctx, id); err != nil {
		return DeleteCommentResponse{}, fmt.Errorf("repo remove comment: %w", err)
	}

	return DeleteCommentResponse{CommentID: id.String()}, nil
}
