// Package editorial implements the article authoring, review and publication use cases.
//
// Each use case is a gateway: Logger, ErrorHandler and Validation stages wrapped
// around one processor that reads the current article, applies a transition and saves it.
package editorial

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/fault"
	"github.com/daniilsolovey/editorial/internal/gateway"
)

const (
	boundedContext = "editorial"
	entityArticle  = "article"
	entityComment  = "editorial_comment"
)

func articleOp(name string) gateway.Operation {
	return gateway.Operation{Context: boundedContext, Entity: entityArticle, Name: name}
}

func commentOp(name string) gateway.Operation {
	return gateway.Operation{Context: boundedContext, Entity: entityComment, Name: name}
}

type Config struct {
	// AllowDirectPublish enables the draft → published fast track.
	AllowDirectPublish bool
	// Now and NewID default to time.Now and uuid.New.
	Now   func() time.Time
	NewID func() uuid.UUID
}

type Service struct {
	CreateArticle   *gateway.Gateway[CreateArticleRequest, CreateArticleResponse]
	GetArticle      *gateway.Gateway[GetArticleRequest, ArticleResponse]
	ListArticles    *gateway.Gateway[ListArticlesRequest, ListArticlesResponse]
	AutoSave        *gateway.Gateway[AutoSaveRequest, AutoSaveResponse]
	SubmitForReview *gateway.Gateway[SubmitForReviewRequest, SubmitForReviewResponse]
	ApproveArticle  *gateway.Gateway[ApproveArticleRequest, ReviewResponse]
	RejectArticle   *gateway.Gateway[RejectArticleRequest, ReviewResponse]
	PublishArticle  *gateway.Gateway[PublishArticleRequest, PublishArticleResponse]
	DirectPublish   *gateway.Gateway[PublishArticleRequest, PublishArticleResponse]
	ArchiveArticle  *gateway.Gateway[ArchiveArticleRequest, ArchiveArticleResponse]
	DeleteArticle   *gateway.Gateway[DeleteArticleRequest, DeleteArticleResponse]
	AddComment      *gateway.Gateway[AddCommentRequest, CommentResponse]
	ListComments    *gateway.Gateway[ListCommentsRequest, ListCommentsResponse]
	DeleteComment   *gateway.Gateway[DeleteCommentRequest, DeleteCommentResponse]
}

type deps struct {
	repo               Repository
	now                func() time.Time
	newID              func() uuid.UUID
	allowDirectPublish bool
}

func NewService(repo Repository, logger *slog.Logger, cfg Config) *Service {
	d := &deps{
		repo:               repo,
		now:                cfg.Now,
		newID:              cfg.NewID,
		allowDirectPublish: cfg.AllowDirectPublish,
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.newID == nil {
		d.newID = uuid.New
	}

	return &Service{
		CreateArticle:   gateway.New[CreateArticleRequest, CreateArticleResponse](articleOp("create"), logger, &createArticle{d}),
		GetArticle:      gateway.New[GetArticleRequest, ArticleResponse](articleOp("get"), logger, &getArticle{d}),
		ListArticles:    gateway.New[ListArticlesRequest, ListArticlesResponse](articleOp("list"), logger, &listArticles{d}),
		AutoSave:        gateway.New[AutoSaveRequest, AutoSaveResponse](articleOp("autosave"), logger, &autoSave{d}),
		SubmitForReview: gateway.New[SubmitForReviewRequest, SubmitForReviewResponse](articleOp("submit_for_review"), logger, &submitForReview{d}),
		ApproveArticle:  gateway.New[ApproveArticleRequest, ReviewResponse](articleOp("approve"), logger, &approveArticle{d}),
		RejectArticle:   gateway.New[RejectArticleRequest, ReviewResponse](articleOp("reject"), logger, &rejectArticle{d}),
		PublishArticle:  gateway.New[PublishArticleRequest, PublishArticleResponse](articleOp("publish"), logger, &publishArticle{d}),
		DirectPublish:   gateway.New[PublishArticleRequest, PublishArticleResponse](articleOp("direct_publish"), logger, &directPublish{d}),
		ArchiveArticle:  gateway.New[ArchiveArticleRequest, ArchiveArticleResponse](articleOp("archive"), logger, &archiveArticle{d}),
		DeleteArticle:   gateway.New[DeleteArticleRequest, DeleteArticleResponse](articleOp("delete"), logger, &deleteArticle{d}),
		AddComment:      gateway.New[AddCommentRequest, CommentResponse](commentOp("create"), logger, &addComment{d}),
		ListComments:    gateway.New[ListCommentsRequest, ListCommentsResponse](commentOp("list"), logger, &listComments{d}),
		DeleteComment:   gateway.New[DeleteCommentRequest, DeleteCommentResponse](commentOp("delete"), logger, &deleteComment{d}),
	}
}

// load resolves an article or fails with NotFound.
func (d *deps) load(ctx context.Context, id uuid.UUID) (article.Article, error) {
	a, err := d.repo.ArticleByID(ctx, id)
	if err != nil {
		return article.Article{}, fmt.Errorf("repo get article: %w", err)
	}
	if a == nil {
		return article.Article{}, fmt.Errorf("article %s: %w", id, fault.ErrNotFound)
	}
	return *a, nil
}

func (d *deps) save(ctx context.Context, a article.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := d.repo.SaveArticle(ctx, a); err != nil {
		return fmt.Errorf("repo save article: %w", err)
	}
	return nil
}

// ensureSlugFree fails with Conflict when the slug is already taken.
func (d *deps) ensureSlugFree(ctx context.Context, slug string) error {
	exists, err := d.repo.ArticleExistsBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("repo check slug: %w", err)
	}
	if exists {
		return fmt.Errorf("slug %q already exists: %w", slug, fault.ErrConflict)
	}
	return nil
}

func (d *deps) timestamp() time.Time {
	return d.now().UTC()
}
