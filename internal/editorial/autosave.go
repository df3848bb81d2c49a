package editorial

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/fault"
)

type AutoSaveRequest struct {
	ArticleID string `json:"articleId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Slug      string `json:"slug"`
}

func NewAutoSaveRequest(articleID, title, content, slug string) (AutoSaveRequest, error) {
	r := AutoSaveRequest{ArticleID: articleID, Title: title, Content: content, Slug: slug}
	return r, fault.Invalid(r.Validate())
}

func (r AutoSaveRequest) Validate() error {
	return mergeErrors(
		validation.ValidateStruct(&r,
			validation.Field(&r.ArticleID, requiredID...),
		),
		r.draft().Validate(),
	)
}

func (r AutoSaveRequest) draft() article.Draft {
	return article.Draft{Title: r.Title, Content: r.Content, Slug: r.Slug}
}

type AutoSaveResponse struct {
	ArticleID string    `json:"articleId"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type autoSave struct{ *deps }

func (p *autoSave) Process(ctx context.Context, req AutoSaveRequest) (AutoSaveResponse, error) {
	id, err := parseID("articleId", req.ArticleID)
	if err != nil {
		return AutoSaveResponse{}, err
	}

	current, err := p.load(ctx, id)
	if err != nil {
		return AutoSaveResponse{}, err
	}

	next, err := current.Revise(req.draft(), p.timestamp())
	if err != nil {
		return AutoSaveResponse{}, err
	}
	if next.Slug != current.Slug {
		if err := p.ensureSlugFree(ctx, next.Slug); err != nil {
			return AutoSaveResponse{}, err
		}
	}
	if err := p.save(ctx, next); err != nil {
		return AutoSaveResponse{}, err
	}

	return AutoSaveResponse{
		ArticleID: next.ID.String(),
		Slug:      next.Slug,
		Status:    next.Status.String(),
		UpdatedAt: next.UpdatedAt,
	}, nil
}
