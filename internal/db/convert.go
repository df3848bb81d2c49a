package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daniilsolovey/editorial/internal/article"
)

func newArticleModel(a article.Article) *Article {
	return &Article{
		ID:              a.ID.String(),
		Title:           a.Title,
		Content:         a.Content,
		Slug:            a.Slug,
		Status:          a.Status.String(),
		AuthorID:        uuidString(a.AuthorID),
		ReviewerID:      uuidString(a.ReviewerID),
		SubmittedAt:     a.SubmittedAt,
		ReviewedAt:      a.ReviewedAt,
		PublishedAt:     a.PublishedAt,
		ApprovalReason:  a.ApprovalReason,
		RejectionReason: a.RejectionReason,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func newArticle(m *Article) (article.Article, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return article.Article{}, fmt.Errorf("parse article id %q: %w", m.ID, err)
	}
	authorID, err := parseUUID(m.AuthorID)
	if err != nil {
		return article.Article{}, fmt.Errorf("parse author id: %w", err)
	}
	reviewerID, err := parseUUID(m.ReviewerID)
	if err != nil {
		return article.Article{}, fmt.Errorf("parse reviewer id: %w", err)
	}
	status, err := article.ParseStatus(m.Status)
	if err != nil {
		return article.Article{}, fmt.Errorf("article %s: %w", m.ID, err)
	}

	return article.Article{
		ID:              id,
		Title:           m.Title,
		Content:         m.Content,
		Slug:            m.Slug,
		Status:          status,
		AuthorID:        authorID,
		ReviewerID:      reviewerID,
		SubmittedAt:     utc(m.SubmittedAt),
		ReviewedAt:      utc(m.ReviewedAt),
		PublishedAt:     utc(m.PublishedAt),
		ApprovalReason:  m.ApprovalReason,
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}, nil
}

func newCommentModel(c article.Comment) *EditorialComment {
	m := &EditorialComment{
		ID:         c.ID.String(),
		ArticleID:  c.ArticleID.String(),
		ReviewerID: uuidString(c.ReviewerID),
		Comment:    c.Body,
		CreatedAt:  c.CreatedAt,
	}
	if c.Selection != nil {
		text, start, end := c.Selection.Text, c.Selection.Start, c.Selection.End
		m.SelectedText = &text
		m.PositionStart = &start
		m.PositionEnd = &end
	}
	return m
}

func newComment(m *EditorialComment) (article.Comment, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return article.Comment{}, fmt.Errorf("parse comment id %q: %w", m.ID, err)
	}
	articleID, err := uuid.Parse(m.ArticleID)
	if err != nil {
		return article.Comment{}, fmt.Errorf("parse article id %q: %w", m.ArticleID, err)
	}
	reviewerID, err := parseUUID(m.ReviewerID)
	if err != nil {
		return article.Comment{}, fmt.Errorf("parse reviewer id: %w", err)
	}

	c := article.Comment{
		ID:         id,
		ArticleID:  articleID,
		ReviewerID: reviewerID,
		Body:       m.Comment,
		CreatedAt:  m.CreatedAt.UTC(),
	}
	if m.SelectedText != nil && m.PositionStart != nil && m.PositionEnd != nil {
		c.Selection = &article.Selection{
			Text:  *m.SelectedText,
			Start: *m.PositionStart,
			End:   *m.PositionEnd,
		}
	}
	return c, nil
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func parseUUID(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
