package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/editorial"
	"github.com/daniilsolovey/editorial/internal/fault"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var _ editorial.Repository = (*Repository)(nil)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) ArticleByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	m := &Article{ID: id.String()}
	err := r.db.ModelContext(ctx, m).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	a, err := newArticle(m)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveArticle upserts the snapshot by primary key.
func (r *Repository) SaveArticle(ctx context.Context, a article.Article) error {
	m := newArticleModel(a)
	q := r.db.ModelContext(ctx, m).OnConflict(`("articleId") DO UPDATE`)
	for _, col := range []string{
		Columns.Article.Title,
		Columns.Article.Content,
		Columns.Article.Slug,
		Columns.Article.Status,
		Columns.Article.AuthorID,
		Columns.Article.ReviewerID,
		Columns.Article.SubmittedAt,
		Columns.Article.ReviewedAt,
		Columns.Article.PublishedAt,
		Columns.Article.ApprovalReason,
		Columns.Article.RejectionReason,
		Columns.Article.UpdatedAt,
	} {
		q = q.Set("? = EXCLUDED.?", pg.Ident(col), pg.Ident(col))
	}

	if _, err := q.Insert(); err != nil {
		return fmt.Errorf("failed to save article: %w", classify(err))
	}
	return nil
}

func (r *Repository) ArticleExistsBySlug(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."slug" = ?`, slug).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check article slug: %w", err)
	}
	return exists, nil
}

func (r *Repository) RemoveArticle(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."articleId" = ?`, id.String()).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to remove article: %w", err)
	}
	return nil
}

// Articles returns filtered articles sorted by createdAt DESC.
func (r *Repository) Articles(ctx context.Context, filter editorial.ArticleFilter) ([]article.Article, error) {
	var models []Article
	err := applyFilter(r.db.ModelContext(ctx, &models), filter).
		OrderExpr(`"t"."createdAt" DESC, "t"."articleId" ASC`).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	list := make([]article.Article, 0, len(models))
	for i := range models {
		a, err := newArticle(&models[i])
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

func (r *Repository) ArticlesCount(ctx context.Context, filter editorial.ArticleFilter) (int, error) {
	count, err := applyFilter(r.db.ModelContext(ctx, (*Article)(nil)), filter).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get articles count: %w", err)
	}
	return count, nil
}

func applyFilter(q *orm.Query, filter editorial.ArticleFilter) *orm.Query {
	if filter.Status != nil {
		q = q.Where(`"t"."status" = ?`, filter.Status.String())
	}
	if filter.AuthorID != nil {
		q = q.Where(`"t"."authorId" = ?`, filter.AuthorID.String())
	}
	return q
}

func (r *Repository) SaveComment(ctx context.Context, c article.Comment) error {
	if _, err := r.db.ModelContext(ctx, newCommentModel(c)).Insert(); err != nil {
		return fmt.Errorf("failed to save comment: %w", classify(err))
	}
	return nil
}

func (r *Repository) CommentByID(ctx context.Context, id uuid.UUID) (*article.Comment, error) {
	m := &EditorialComment{ID: id.String()}
	err := r.db.ModelContext(ctx, m).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	c, err := newComment(m)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CommentsByArticle returns comments sorted by createdAt ASC.
func (r *Repository) CommentsByArticle(ctx context.Context, articleID uuid.UUID) ([]article.Comment, error) {
	var models []EditorialComment
	err := r.db.ModelContext(ctx, &models).
		Where(`"t"."articleId" = ?`, articleID.String()).
		OrderExpr(`"t"."createdAt" ASC, "t"."commentId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	list := make([]article.Comment, 0, len(models))
	for i := range models {
		c, err := newComment(&models[i])
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func (r *Repository) RemoveComment(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, (*EditorialComment)(nil)).
		Where(`"t"."commentId" = ?`, id.String()).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to remove comment: %w", err)
	}
	return nil
}

func (r *Repository) RemoveCommentsByArticle(ctx context.Context, articleID uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, (*EditorialComment)(nil)).
		Where(`"t"."articleId" = ?`, articleID.String()).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to remove comments: %w", err)
	}
	return nil
}

// classify maps integrity violations to the editorial error kinds.
func classify(err error) error {
	var pgErr pg.Error
	if !errors.As(err, &pgErr) || !pgErr.IntegrityViolation() {
		return err
	}

	switch pgErr.Field('C') {
	case pgUniqueViolation:
		return fmt.Errorf("%s: %w", pgErr.Field('D'), fault.ErrConflict)
	case pgForeignKeyViolation:
		return fmt.Errorf("%s: %w", pgErr.Field('D'), fault.ErrNotFound)
	default:
		return err
	}
}
