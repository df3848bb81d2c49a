package editorial

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/fault"
)

// Initial statuses accepted on creation.
var creatableStatuses = []any{
	string(article.StatusDraft),
	string(article.StatusPublished),
	string(article.StatusArchived),
}

type CreateArticleRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Slug      string  `json:"slug"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt,omitempty"`
	AuthorID  *string `json:"authorId,omitempty"`
}

// NewCreateArticleRequest builds a request and fails fast on a malformed shape.
func NewCreateArticleRequest(title, content, slug, status string, authorID *string) (CreateArticleRequest, error) {
	r := CreateArticleRequest{Title: title, Content: content, Slug: slug, Status: status, AuthorID: authorID}
	return r, fault.Invalid(r.Validate())
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required,
			validation.RuneLength(article.MinTitleLength, article.MaxTitleLength),
		),
		validation.Field(&r.Content,
			validation.Required,
			validation.RuneLength(article.MinContentLength, 0),
		),
		validation.Field(&r.Slug,
			validation.Required,
			validation.RuneLength(1, article.MaxSlugLength),
			validation.Match(article.SlugRegexp).Error("must contain lowercase letters and digits separated by single hyphens"),
		),
		validation.Field(&r.Status,
			validation.Required,
			validation.In(creatableStatuses...),
		),
		validation.Field(&r.CreatedAt, validation.Date(time.RFC3339)),
		validation.Field(&r.AuthorID, optionalID...),
	)
}

type CreateArticleResponse struct {
	ArticleID   string     `json:"articleId"`
	Slug        string     `json:"slug"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

type createArticle struct{ *deps }

func (p *createArticle) Process(ctx context.Context, req CreateArticleRequest) (CreateArticleResponse, error) {
	authorID, err := parseOptionalID("authorId", req.AuthorID)
	if err != nil {
		return CreateArticleResponse{}, err
	}

	now := p.timestamp()
	createdAt := now
	if req.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			return CreateArticleResponse{}, fault.Invalid(validation.Errors{"createdAt": err})
		}
		createdAt = createdAt.UTC()
	}

	if err := p.ensureSlugFree(ctx, req.Slug); err != nil {
		return CreateArticleResponse{}, err
	}

	a, err := article.New(p.newID(), article.Draft{
		Title:   req.Title,
		Content: req.Content,
		Slug:    req.Slug,
	}, authorID, createdAt)
	if err != nil {
		return CreateArticleResponse{}, err
	}

	switch article.Status(req.Status) {
	case article.StatusPublished:
		if !p.allowDirectPublish {
			return CreateArticleResponse{}, errDirectPublishDisabled(a.Status)
		}
		if a, err = a.DirectPublish(now); err != nil {
			return CreateArticleResponse{}, err
		}
	case article.StatusArchived:
		if a, err = a.Archive(now); err != nil {
			return CreateArticleResponse{}, err
		}
	}

	if err := p.save(ctx, a); err != nil {
		return CreateArticleResponse{}, err
	}

	return CreateArticleResponse{
		ArticleID:   a.ID.String(),
		Slug:        a.Slug,
		Status:      a.Status.String(),
		CreatedAt:   a.CreatedAt,
		PublishedAt: a.PublishedAt,
	}, nil
}

func errDirectPublishDisabled(from article.Status) error {
	return fmt.Errorf("direct publish is disabled, articles are published after approval: %w",
		&article.TransitionError{From: from, Action: article.ActionDirectPublish, Allowed: article.AllowedFrom(article.ActionPublish)})
}
