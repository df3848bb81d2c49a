package editorial

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/fault"
)

// PublishArticleRequest is shared by publish and direct_publish.
type PublishArticleRequest struct {
	ArticleID string `json:"articleId"`
}

func NewPublishArticleRequest(articleID string) (PublishArticleRequest, error) {
	r := PublishArticleRequest{ArticleID: articleID}
	return r, fault.Invalid(r.Validate())
}

func (r PublishArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, requiredID...),
	)
}

type PublishArticleResponse struct {
	ArticleID   string    `json:"articleId"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	PublishedAt time.Time `json:"publishedAt"`
}

type publishArticle struct{ *deps }

func (p *publishArticle) Process(ctx context.Context, req PublishArticleRequest) (PublishArticleResponse, error) {
	return p.publish(ctx, req.ArticleID, article.Article.Publish)
}

type directPublish struct{ *deps }

func (p *directPublish) Process(ctx context.Context, req PublishArticleRequest) (PublishArticleResponse, error) {
	if !p.allowDirectPublish {
		id, err := parseID("articleId", req.ArticleID)
		if err != nil {
			return PublishArticleResponse{}, err
		}
		current, err := p.load(ctx, id)
		if err != nil {
			return PublishArticleResponse{}, err
		}
		return PublishArticleResponse{}, errDirectPublishDisabled(current.Status)
	}
	return p.publish(ctx, req.ArticleID, article.Article.DirectPublish)
}

func (d *deps) publish(ctx context.Context, articleID string, transition func(article.Article, time.Time) (article.Article, error)) (PublishArticleResponse, error) {
	id, err := parseID("articleId", articleID)
	if err != nil {
		return PublishArticleResponse{}, err
	}

	current, err := d.load(ctx, id)
	if err != nil {
		return PublishArticleResponse{}, err
	}

	next, err := transition(current, d.timestamp())
	if err != nil {
		return PublishArticleResponse{}, err
	}
	if err := d.save(ctx, next); err != nil {
		return PublishArticleResponse{}, err
	}

	return PublishArticleResponse{
		ArticleID:   next.ID.String(),
		Slug:        next.Slug,
		Status:      next.Status.String(),
		PublishedAt: *next.PublishedAt,
	}, nil
}
