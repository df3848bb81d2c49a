package db

import (
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/editorial/internal/article"
)

var baseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

func TestArticleModelRoundTrip(t *testing.T) {
	author, reviewer := uuid.New(), uuid.New()
	a, err := article.New(uuid.New(), article.Draft{
		Title:   "Converted article",
		Content: "Content that survives the trip",
		Slug:    "converted-article",
	}, &author, baseTime)
	require.NoError(t, err)

	a, err = a.Submit(nil, baseTime.Add(time.Minute))
	require.NoError(t, err)
	reason := "Well sourced"
	decision, err := article.Approve(&reason)
	require.NoError(t, err)
	a, err = a.Review(reviewer, decision, baseTime.Add(2*time.Minute))
	require.NoError(t, err)

	m := newArticleModel(a)
	assert.Equal(t, "approved", m.Status)
	require.NotNil(t, m.ReviewerID)
	assert.Equal(t, reviewer.String(), *m.ReviewerID)

	got, err := newArticle(m)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestNewArticle_InvalidRow(t *testing.T) {
	_, err := newArticle(&Article{ID: "not-a-uuid", Status: "draft"})
	assert.Error(t, err)

	_, err = newArticle(&Article{ID: uuid.NewString(), Status: "lost"})
	assert.Error(t, err)

	bad := "broken"
	_, err = newArticle(&Article{ID: uuid.NewString(), Status: "draft", AuthorID: &bad})
	assert.Error(t, err)
}

func TestCommentModelRoundTrip(t *testing.T) {
	text, start, end := "selected", 3, 11
	c, err := article.NewComment(uuid.New(), uuid.New(), nil, article.CommentDraft{
		Body:          "Check this phrase",
		SelectedText:  &text,
		PositionStart: &start,
		PositionEnd:   &end,
	}, baseTime)
	require.NoError(t, err)

	m := newCommentModel(c)
	assert.Nil(t, m.ReviewerID)
	require.NotNil(t, m.PositionEnd)
	assert.Equal(t, 11, *m.PositionEnd)

	got, err := newComment(m)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	plain, err := newComment(&EditorialComment{ID: uuid.NewString(), ArticleID: uuid.NewString(), Comment: "plain"})
	require.NoError(t, err)
	assert.Nil(t, plain.Selection)
}

func TestConnConfig(t *testing.T) {
	config, err := connConfig(&pg.Options{Addr: "db.internal:6432", User: "editor", Password: "secret", Database: "editorial"})
	require.NoError(t, err)
	assert.Equal(t, "db.internal", config.Host)
	assert.Equal(t, uint16(6432), config.Port)
	assert.Equal(t, "editor", config.User)
	assert.Equal(t, "editorial", config.Database)

	config, err = connConfig(&pg.Options{User: "editor"})
	require.NoError(t, err)
	assert.Equal(t, "localhost", config.Host)
	assert.Equal(t, uint16(5432), config.Port)

	_, err = connConfig(&pg.Options{Addr: "no-port"})
	assert.Error(t, err)

	_, err = connConfig(&pg.Options{Addr: "host:99999"})
	assert.Error(t, err)
}
