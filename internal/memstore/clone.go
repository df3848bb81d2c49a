package memstore

import "github.com/daniilsolovey/editorial/internal/article"

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneArticle copies every pointer field so stored snapshots share no memory with callers.
func cloneArticle(a article.Article) article.Article {
	a.AuthorID = clonePtr(a.AuthorID)
	a.ReviewerID = clonePtr(a.ReviewerID)
	a.SubmittedAt = clonePtr(a.SubmittedAt)
	a.ReviewedAt = clonePtr(a.ReviewedAt)
	a.PublishedAt = clonePtr(a.PublishedAt)
	a.ApprovalReason = clonePtr(a.ApprovalReason)
	a.RejectionReason = clonePtr(a.RejectionReason)
	return a
}

func cloneComment(c article.Comment) article.Comment {
	c.ReviewerID = clonePtr(c.ReviewerID)
	c.Selection = clonePtr(c.Selection)
	return c
}
