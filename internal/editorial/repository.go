package editorial

import (
	"context"

	"github.com/google/uuid"

	"github.com/daniilsolovey/editorial/internal/article"
)

// ArticleRepository persists article snapshots. ArticleByID returns (nil, nil) for an unknown id.
type ArticleRepository interface {
	ArticleByID(ctx context.Context, id uuid.UUID) (*article.Article, error)
	SaveArticle(ctx context.Context, a article.Article) error
	ArticleExistsBySlug(ctx context.Context, slug string) (bool, error)
	RemoveArticle(ctx context.Context, id uuid.UUID) error
	Articles(ctx context.Context, filter ArticleFilter) ([]article.Article, error)
	ArticlesCount(ctx context.Context, filter ArticleFilter) (int, error)
}

// CommentRepository persists editorial comments. CommentByID returns (nil, nil) for an unknown id.
type CommentRepository interface {
	SaveComment(ctx context.Context, c article.Comment) error
	CommentByID(ctx context.Context, id uuid.UUID) (*article.Comment, error)
	CommentsByArticle(ctx context.Context, articleID uuid.UUID) ([]article.Comment, error)
	RemoveComment(ctx context.Context, id uuid.UUID) error
	RemoveCommentsByArticle(ctx context.Context, articleID uuid.UUID) error
}

// Repository is the full storage collaborator of the service.
type Repository interface {
	ArticleRepository
	CommentRepository
}

type ArticleFilter struct {
	Status   *article.Status
	AuthorID *uuid.UUID
	Limit    int
	Offset   int
}
