package editorial

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ArchiveArticleRequest struct {
	ArticleID string `json:"articleId"`
}

func (r ArchiveArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, requiredID...),
	)
}

type ArchiveArticleResponse struct {
	ArticleID string    `json:"articleId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type archiveArticle struct{ *deps }

func (p *archiveArticle) Process(ctx context.Context, req ArchiveArticleRequest) (ArchiveArticleResponse, error) {
	id, err := parseID("articleId", req.ArticleID)
	if err != nil {
		return ArchiveArticleResponse{}, err
	}

	current, err := p.load(ctx, id)
	if err != nil {
		return ArchiveArticleResponse{}, err
	}

	next, err := current.Archive(p.timestamp())
	if err != nil {
		return ArchiveArticleResponse{}, err
	}
	if err := p.save(ctx, next); err != nil {
		return ArchiveArticleResponse{}, err
	}

	return ArchiveArticleResponse{
		ArticleID: next.ID.String(),
		Status:    next.Status.String(),
		UpdatedAt: next.UpdatedAt,
	}, nil
}

type DeleteArticleRequest struct {
	ArticleID string `json:"articleId"`
}

func (r DeleteArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, requiredID...),
	)
}

type DeleteArticleResponse struct {
	ArticleID string `json:"articleId"`
}

type deleteArticle struct{ *deps }

// Process removes the article together with its comments.
func (p *deleteArticle) Process(ctx context.Context, req DeleteArticleRequest) (DeleteArticleResponse, error) {
	id, err := parseID("articleId", req.ArticleID)
	if err != nil {
		return DeleteArticleResponse{}, err
	}

	if _, err := p.load(ctx, id); err != nil {
		return DeleteArticleResponse{}, err
	}
	if err := p.repo.RemoveCommentsByArticle(ctx, id); err != nil {
		return DeleteArticleResponse{}, fmt.Errorf("repo remove comments: %w", err)
	}
	if err := p.repo.RemoveArticle(ctx, id); err != nil {
		return DeleteArticleResponse{}, fmt.Errorf("repo remove article: %w", err)
	}

	return DeleteArticleResponse{ArticleID: id.String()}, nil
}
