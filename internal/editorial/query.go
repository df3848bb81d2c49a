package editorial

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/daniilsolovey/editorial/internal/article"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type GetArticleRequest struct {
	ArticleID string `json:"articleId"`
}

func (r GetArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, requiredID...),
	)
}

type getArticle struct{ *deps }

func (p *getArticle) Process(ctx context.Context, req GetArticleRequest) (ArticleResponse, error) {
	id, err := parseID("articleId", req.ArticleID)
	if err != nil {
		return ArticleResponse{}, err
	}
	a, err := p.load(ctx, id)
	if err != nil {
		return ArticleResponse{}, err
	}
	return NewArticleResponse(a), nil
}

type ListArticlesRequest struct {
	Status   *string `json:"status,omitempty"`
	AuthorID *string `json:"authorId,omitempty"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}

func (r ListArticlesRequest) Validate() error {
	statuses := make([]any, len(article.Statuses))
	for i, s := range article.Statuses {
		statuses[i] = string(s)
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(statuses...)),
		validation.Field(&r.AuthorID, optionalID...),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(MaxPageSize)),
		validation.Field(&r.Offset, validation.Min(0)),
	)
}

type ListArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}

type listArticles struct{ *deps }

func (p *listArticles) Process(ctx context.Context, req ListArticlesRequest) (ListArticlesResponse, error) {
	authorID, err := parseOptionalID("authorId", req.AuthorID)
	if err != nil {
		return ListArticlesResponse{}, err
	}

	filter := ArticleFilter{AuthorID: authorID, Limit: req.Limit, Offset: req.Offset}
	if filter.Limit == 0 {
		filter.Limit = DefaultPageSize
	}
	if req.Status != nil {
		st, err := article.ParseStatus(*req.Status)
		if err != nil {
			return ListArticlesResponse{}, err
		}
		filter.Status = &st
	}

	list, err := p.repo.Articles(ctx, filter)
	if err != nil {
		return ListArticlesResponse{}, fmt.Errorf("repo get articles: %w", err)
	}
	total, err := p.repo.ArticlesCount(ctx, filter)
	if err != nil {
		return ListArticlesResponse{}, fmt.Errorf("repo get articles count: %w", err)
	}

	resp := ListArticlesResponse{
		Articles: make([]ArticleResponse, len(list)),
		Total:    total,
	}
	for i := range list {
		resp.Articles[i] = NewArticleResponse(list[i])
	}
	return resp, nil
}
