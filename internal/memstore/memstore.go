// Package memstore is an in-process editorial.Repository used for local runs and tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/editorial"
	"github.com/daniilsolovey/editorial/internal/fault"
)

var _ editorial.Repository = (*Store)(nil)

type Store struct {
	mu       sync.RWMutex
	articles map[uuid.UUID]article.Article
	comments map[uuid.UUID]article.Comment
}

func New() *Store {
	return &Store{
		articles: make(map[uuid.UUID]article.Article),
		comments: make(map[uuid.UUID]article.Comment),
	}
}

func (s *Store) ArticleByID(_ context.Context, id uuid.UUID) (*article.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	a = cloneArticle(a)
	return &a, nil
}

// SaveArticle inserts or replaces a snapshot. A slug held by another article is a conflict.
func (s *Store) SaveArticle(_ context.Context, a article.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, other := range s.articles {
		if id != a.ID && other.Slug == a.Slug {
			return fmt.Errorf("slug %q: %w", a.Slug, fault.ErrConflict)
		}
	}
	s.articles[a.ID] = cloneArticle(a)
	return nil
}

func (s *Store) ArticleExistsBySlug(_ context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) RemoveArticle(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.articles, id)
	return nil
}

// Articles returns matching articles, newest first.
func (s *Store) Articles(_ context.Context, filter editorial.ArticleFilter) ([]article.Article, error) {
	s.mu.RLock()
	list := s.filter(filter)
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID.String() < list[j].ID.String()
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	if filter.Offset >= len(list) {
		return []article.Article{}, nil
	}
	list = list[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(list) {
		list = list[:filter.Limit]
	}
	return list, nil
}

func (s *Store) ArticlesCount(_ context.Context, filter editorial.ArticleFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.filter(filter)), nil
}

func (s *Store) filter(filter editorial.ArticleFilter) []article.Article {
	list := make([]article.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.AuthorID != nil && (a.AuthorID == nil || *a.AuthorID != *filter.AuthorID) {
			continue
		}
		list = append(list, cloneArticle(a))
	}
	return list
}

func (s *Store) SaveComment(_ context.Context, c article.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[c.ArticleID]; !ok {
		return fmt.Errorf("article %s: %w", c.ArticleID, fault.ErrNotFound)
	}
	s.comments[c.ID] = cloneComment(c)
	return nil
}

func (s *Store) CommentByID(_ context.Context, id uuid.UUID) (*article.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	c = cloneComment(c)
	return &c, nil
}

// CommentsByArticle returns comments in creation order.
func (s *Store) CommentsByArticle(_ context.Context, articleID uuid.UUID) ([]article.Comment, error) {
	s.mu.RLock()
	list := make([]article.Comment, 0)
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			list = append(list, cloneComment(c))
		}
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID.String() < list[j].ID.String()
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (s *Store) RemoveComment(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.comments, id)
	return nil
}

func (s *Store) RemoveCommentsByArticle(_ context.Context, articleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, c := range s.comments {
		if c.ArticleID == articleID {
			delete(s.comments, id)
		}
	}
	return nil
}
