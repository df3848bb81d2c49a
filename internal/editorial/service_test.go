package editorial_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/editorial/internal/article"
	"github.com/daniilsolovey/editorial/internal/editorial"
	"github.com/daniilsolovey/editorial/internal/fault"
	"github.com/daniilsolovey/editorial/internal/gateway"
	"github.com/daniilsolovey/editorial/internal/memstore"
)

var fixedNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func newService(t *testing.T, cfg editorial.Config) (*editorial.Service, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return fixedNow }
	}
	return editorial.NewService(store, noOpLogger(), cfg), store
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// requireKind asserts the gateway returned a normalized error of the given kind.
func requireKind(t *testing.T, err error, kind fault.Kind) *gateway.Error {
	t.Helper()
	require.Error(t, err)
	var gerr *gateway.Error
	require.True(t, errors.As(err, &gerr), "expected *gateway.Error, got %T", err)
	assert.Equal(t, kind, gerr.Kind, "unexpected kind for %v", err)
	return gerr
}

func createDraft(t *testing.T, svc *editorial.Service, slug string) editorial.CreateArticleResponse {
	t.Helper()
	req, err := editorial.NewCreateArticleRequest("Valid Title Five", "0123456789", slug, "draft", nil)
	require.NoError(t, err)
	resp, err := svc.CreateArticle.Execute(context.Background(), req)
	require.NoError(t, err)
	return resp
}

func TestService_EditorialLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, editorial.Config{})
	reviewer := uuid.New().String()

	created := createDraft(t, svc, "valid-title-five")
	assert.Equal(t, "draft", created.Status)
	_, err := uuid.Parse(created.ArticleID)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Nil(t, created.PublishedAt)

	submitReq, err := editorial.NewSubmitForReviewRequest(created.ArticleID, nil)
	require.NoError(t, err)

	submitted, err := svc.SubmitForReview.Execute(ctx, submitReq)
	require.NoError(t, err)
	assert.Equal(t, "pending_review", submitted.Status)
	assert.Equal(t, fixedNow, submitted.SubmittedAt)

	_, err = svc.SubmitForReview.Execute(ctx, submitReq)
	gerr := requireKind(t, err, fault.InvalidTransition)
	assert.Equal(t, "editorial.article.submit_for_review", gerr.Op.String())

	approveReq, err := editorial.NewApproveArticleRequest(created.ArticleID, reviewer, nil)
	require.NoError(t, err)
	approved, err := svc.ApproveArticle.Execute(ctx, approveReq)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	assert.Equal(t, reviewer, approved.ReviewerID)
	assert.Nil(t, approved.Reason)

	publishReq, err := editorial.NewPublishArticleRequest(created.ArticleID)
	require.NoError(t, err)
	published, err := svc.PublishArticle.Execute(ctx, publishReq)
	require.NoError(t, err)
	assert.Equal(t, "published", published.Status)
	assert.Equal(t, fixedNow, published.PublishedAt)

	_, err = svc.PublishArticle.Execute(ctx, publishReq)
	requireKind(t, err, fault.Conflict)

	stored, err := store.ArticleByID(ctx, uuid.MustParse(created.ArticleID))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, article.StatusPublished, stored.Status)
	require.NotNil(t, stored.PublishedAt)
	require.NotNil(t, stored.ReviewerID)
	assert.Equal(t, reviewer, stored.ReviewerID.String())
}

func TestService_RejectWithBlankReasonFailsValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, editorial.Config{})

	created := createDraft(t, svc, "blank-reason")
	_, err := svc.SubmitForReview.Execute(ctx, editorial.SubmitForReviewRequest{ArticleID: created.ArticleID})
	require.NoError(t, err)

	for _, reason := range []string{"", "   "} {
		_, err = svc.RejectArticle.Execute(ctx, editorial.RejectArticleRequest{
			ArticleID:  created.ArticleID,
			ReviewerID: uuid.New().String(),
			Reason:     reason,
		})
		gerr := requireKind(t, err, fault.Validation)

		var verr *fault.ValidationError
		require.True(t, errors.As(gerr, &verr))
		assert.Contains(t, verr.Fields(), "reason")
	}

	stored, err := store.ArticleByID(ctx, uuid.MustParse(created.ArticleID))
	require.NoError(t, err)
	assert.Equal(t, article.StatusPendingReview, stored.Status)
	assert.Nil(t, stored.ReviewerID)
}

func TestService_RejectAndResubmit(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, editorial.Config{})
	reviewer := uuid.New().String()

	created := createDraft(t, svc, "needs-work")
	_, err := svc.SubmitForReview.Execute(ctx, editorial.SubmitForReviewRequest{ArticleID: created.ArticleID})
	require.NoError(t, err)

	rejected, err := svc.RejectArticle.Execute(ctx, editorial.RejectArticleRequest{
		ArticleID:  created.ArticleID,
		ReviewerID: reviewer,
		Reason:     "Sources are missing",
	})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	require.NotNil(t, rejected.Reason)
	assert.Equal(t, "Sources are missing", *rejected.Reason)

	_, err = svc.PublishArticle.Execute(ctx, editorial.PublishArticleRequest{ArticleID: created.ArticleID})
	requireKind(t, err, fault.InvalidTransition)

	resubmitted, err := svc.SubmitForReview.Execute(ctx, editorial.SubmitForReviewRequest{ArticleID: created.ArticleID})
	require.NoError(t, err)
	assert.Equal(t, "pending_review", resubmitted.Status)

	stored, err := store.ArticleByID(ctx, uuid.MustParse(created.ArticleID))
	require.NoError(t, err)
	assert.Nil(t, stored.ReviewerID)
	assert.Nil(t, stored.ReviewedAt)
	assert.Nil(t, stored.RejectionReason)
}

func TestService_ApproveRequiresPendingReview(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, editorial.Config{})

	created := createDraft(t, svc, "not-submitted")
	_, err := svc.ApproveArticle.Execute(ctx, editorial.ApproveArticleRequest{
		ArticleID:  created.ArticleID,
		ReviewerID: uuid.New().String(),
		Reason:     strPtr("Looks good"),
	})
	requireKind(t, err, fault.InvalidTransition)

	stored, err := store.ArticleByID(ctx, uuid.MustParse(created.ArticleID))
	require.NoError(t, err)
	assert.Equal(t, article.StatusDraft, stored.Status)
}

func TestService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, editorial.Config{})
	missing := uuid.New().String()

	_, err := svc.GetArticle.Execute(ctx, editorial.GetArticleRequest{ArticleID: missing})
	requireKind(t, err, fault.NotFound)

	_, err = svc.SubmitForReview.Execute(ctx, editorial.SubmitForReviewRequest{ArticleID: missing})
	requireKind(t, err, fault.NotFound)

	_, err = svc.AddComment.Execute(ctx, editorial.AddCommentRequest{ArticleID: missing, Comment: "Hello there"})
	requireKind(t, err, fault.NotFound)

	_, err = svc.DeleteComment.Execute(ctx, editorial.DeleteCommentRequest{CommentID: missing})
	requireKind(t, err, fault.NotFound)

	_, err = svc.DeleteArticle.Execute(ctx, editorial.DeleteArticleRequest{ArticleID: missing})
	requireKind(t, err, fault.NotFound)
}

func TestService_CreateArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("DuplicateSlugIsConflict", func(t *testing.T) {
		svc, _ := newService(t, editorial.Config{})
		createDraft(t, svc, "taken-slug")

		req, err := editorial.NewCreateArticleRequest("Another Title", "Different content", "taken-slug", "draft", nil)
		require.NoError(t, err)
		_, err = svc.CreateArticle.Execute(ctx, req)
		requireKind(t, err, fault.Conflict)
	})

	t.Run("InvalidRequest", func(t *testing.T) {
		_, err := editorial.NewCreateArticleRequest("Tiny", "short", "Bad Slug", "pending_review", nil)
		require.Error(t, err)
		assert.Equal(t, fault.Validation, fault.KindOf(err))

		var verr *fault.ValidationError
		require.True(t, errors.As(err, &verr))
		fields := verr.Fields()
		for _, f := range []string{"title", "content", "slug", "status"} {
			assert.Contains(t, fields, f)
		}
	})

	t.Run("ExplicitCreatedAtAndAuthor", func(t *testing.T) {
		svc, store := newService(t, editorial.Config{})
		author := uuid.New().String()

		resp, err := svc.CreateArticle.Execute(ctx, editorial.CreateArticleRequest{
			Title:     "Backdated article",
			Content:   "Content with enough characters",
			Slug:      "backdated",
			Status:    "draft",
			CreatedAt: "2026-01-02T03:04:05+02:00",
			AuthorID:  &author,
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 2, 1, 4, 5, 0, time.UTC), resp.CreatedAt)

		stored, err := store.ArticleByID(ctx, uuid.MustParse(resp.ArticleID))
		require.NoError(t, err)
		require.NotNil(t, stored.AuthorID)
		assert.Equal(t, author, stored.AuthorID.String())
	})

	t.Run("PublishedNeedsDirectPublish", func(t *testing.T) {
		svc, _ := newService(t, editorial.Config{})
		req, err := editorial.NewCreateArticleRequest("Breaking news", "Very urgent content", "breaking", "published", nil)
		require.NoError(t, err)
		_, err = svc.CreateArticle.Execute(ctx, req)
		requireKind(t, err, fault.InvalidTransition)

		svc, _ = newService(t, editorial.Config{AllowDirectPublish: true})
		resp, err := svc.CreateArticle.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "published", resp.Status)
		require.NotNil(t, resp.PublishedAt)
	})

	t.Run("Archived", func(t *testing.T) {
		svc, _ := newService(t, editorial.Config{})
		req, err := editorial.NewCreateArticleRequest("Old material", "Imported from archive", "old-material", "archived", nil)
		require.NoError(t, err)
		resp, err := svc.CreateArticle.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "archived", resp.Status)
		assert.Nil(t, resp.PublishedAt)
	})

	t.Run("GeneratedID", func(t *testing.T) {
		id := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
		svc, _ := newService(t, editorial.Config{NewID: func() uuid.UUID { return id }})
		resp := createDraft(t, svc, "fixed-id")
		assert.Equal(t, id.String(), resp.ArticleID)
	})
}

func TestService_SubmitByAnotherAuthor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, editorial.Config{})
	author := uuid.New().String()

	req, err := editorial.NewCreateArticleRequest("Authored piece", "Written by someone", "authored", "draft", &author)
	require.NoError(t, err)
	created, err := svc.CreateArticle.Execute(ctx, req)
	require.NoError(t, err)

	_, err = svc.SubmitForReview.Execute(ctx, editorial.SubmitForReviewRequest{
		ArticleID: created.ArticleID,
		AuthorID:  strPtr(uuid.New().String()),
	})
	requireKind(t, err, fault.InvalidTransition)

	resp, err := svc.SubmitForReview.Execute(ctx, editorial.SubmitForReviewRequest{
		ArticleID: created.ArticleID,
		AuthorID:  &author,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.AuthorID)
	assert.Equal(t, author, *resp.AuthorID)
}

func TestService_DirectPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		svc, _ := newService(t, editorial.Config{})
		created := createDraft(t, svc, "fast-track")
		_, err := svc.DirectPublish.Execute(ctx, editorial.PublishArticleRequest{ArticleID: created.ArticleID})
		requireKind(t, err, fault.InvalidTransition)
	})

	t.Run("Enabled", func(t *testing.T) {
		svc, _ := newService(t, editorial.Config{AllowDirectPublish: true})
		created := createDraft(t, svc, "fast-track")
		resp, err := svc.DirectPublish.Execute(ctx, editorial.PublishArticleRequest{ArticleID: created.ArticleID})
		require.NoError(t, err)
		assert.Equal(t, "published", resp.Status)
	})

	t.Run("PublishNeverAcceptsDraft", func(t *testing.T) {
		svc, _ := newService(t, editorial.Config{AllowDirectPublish: true})
		created := createDraft(t, svc, "fast-track")
		_, err := svc.PublishArticle.Execute(ctx, editorial.PublishArticleRequest{ArticleID: created.ArticleID})
		requireKind(t, err, fault.InvalidTransition)
	})
}

func TestService_AutoSave(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, editorial.Config{AllowDirectPublish: true})

	created := createDraft(t, svc, "work-in-progress")
	createDraft(t, svc, "someone-else")

	req, err := editorial.NewAutoSaveRequest(created.ArticleID, "Revised title", "Revised content body", "work-in-progress-v2")
	require.NoError(t, err)
	resp, err := svc.AutoSave.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, "work-in-progress-v2", resp.Slug)

	stored, err := store.ArticleByID(ctx, uuid.MustParse(created.ArticleID))
	require.NoError(t, err)
	assert.Equal(t, "Revised title", stored.Title)

	t.Run("SameSlugIsAllowed", func(t *testing.T) {
		_, err := svc.AutoSave.Execute(ctx, editorial.AutoSaveRequest{
			ArticleID: created.ArticleID, Title: "Revised again", Content: "Revised content body", Slug: "work-in-progress-v2",
		})
		require.NoError(t, err)
	})

	t.Run("SlugOfAnotherArticleIsConflict", func(t *testing.T) {
		_, err := svc.AutoSave.Execute(ctx, editorial.AutoSaveRequest{
			ArticleID: created.ArticleID, Title: "Revised again", Content: "Revised content body", Slug: "someone-else",
		})
		requireKind(t, err, fault.Conflict)
	})

	t.Run("InvalidDraft", func(t *testing.T) {
		_, err := svc.AutoSave.Execute(ctx, editorial.AutoSaveRequest{
			ArticleID: created.ArticleID, Title: "", Content: "Revised content body", Slug: "work-in-progress-v2",
		})
		requireKind(t, err, fault.Validation)
	})

	t.Run("PublishedIsLocked", func(t *testing.T) {
		_, err := svc.DirectPublish.Execute(ctx, editorial.PublishArticleRequest{ArticleID: created.ArticleID})
		require.NoError(t, err)

		_, err = svc.AutoSave.Execute(ctx, editorial.AutoSaveRequest{
			ArticleID: created.ArticleID, Title: "Silent edit", Content: "Changed after publication", Slug: "work-in-progress-v2",
		})
		requireKind(t, err, fault.InvalidTransition)

		stored, err := store.ArticleByID(ctx, uuid.MustParse(created.ArticleID))
		require.NoError(t, err)
		assert.Equal(t, "Revised again", stored.Title)
	})
}

func TestService_ArchiveAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, editorial.Config{AllowDirectPublish: true})

	created := createDraft(t, svc, "to-archive")
	_, err := svc.DirectPublish.Execute(ctx, editorial.PublishArticleRequest{ArticleID: created.ArticleID})
	require.NoError(t, err)

	archived, err := svc.ArchiveArticle.Execute(ctx, editorial.ArchiveArticleRequest{ArticleID: created.ArticleID})
	require.NoError(t, err)
	assert.Equal(t, "archived", archived.Status)

	stored, err := store.ArticleByID(ctx, uuid.MustParse(created.ArticleID))
	require.NoError(t, err)
	assert.Nil(t, stored.PublishedAt)

	_, err = svc.ArchiveArticle.Execute(ctx, editorial.ArchiveArticleRequest{ArticleID: created.ArticleID})
	requireKind(t, err, fault.InvalidTransition)

	_, err = svc.AddComment.Execute(ctx, editorial.AddCommentRequest{ArticleID: created.ArticleID, Comment: "Archived for legal reasons"})
	require.NoError(t, err)

	deleted, err := svc.DeleteArticle.Execute(ctx, editorial.DeleteArticleRequest{ArticleID: created.ArticleID})
	require.NoError(t, err)
	assert.Equal(t, created.ArticleID, deleted.ArticleID)

	stored, err = store.ArticleByID(ctx, uuid.MustParse(created.ArticleID))
	require.NoError(t, err)
	assert.Nil(t, stored)

	comments, err := store.CommentsByArticle(ctx, uuid.MustParse(created.ArticleID))
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestService_Comments(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, editorial.Config{})
	created := createDraft(t, svc, "reviewed-text")
	reviewer := uuid.New().String()

	anchored, err := svc.AddComment.Execute(ctx, editorial.AddCommentRequest{
		ArticleID:     created.ArticleID,
		ReviewerID:    &reviewer,
		Comment:       "Please cite this",
		SelectedText:  strPtr("0123"),
		PositionStart: intPtr(0),
		PositionEnd:   intPtr(4),
	})
	require.NoError(t, err)
	require.NotNil(t, anchored.PositionEnd)
	assert.Equal(t, 4, *anchored.PositionEnd)
	assert.Equal(t, reviewer, *anchored.ReviewerID)

	_, err = svc.AddComment.Execute(ctx, editorial.AddCommentRequest{
		ArticleID:    created.ArticleID,
		Comment:      "Half a selection",
		SelectedText: strPtr("0123"),
	})
	requireKind(t, err, fault.Validation)

	_, err = svc.AddComment.Execute(ctx, editorial.AddCommentRequest{
		ArticleID:     created.ArticleID,
		Comment:       "Backwards selection",
		SelectedText:  strPtr("0123"),
		PositionStart: intPtr(4),
		PositionEnd:   intPtr(4),
	})
	requireKind(t, err, fault.Validation)

	list, err := svc.ListComments.Execute(ctx, editorial.ListCommentsRequest{ArticleID: created.ArticleID})
	require.NoError(t, err)
	require.Len(t, list.Comments, 1)
	assert.Equal(t, anchored.CommentID, list.Comments[0].CommentID)

	_, err = svc.DeleteComment.Execute(ctx, editorial.DeleteCommentRequest{CommentID: anchored.CommentID})
	require.NoError(t, err)

	list, err = svc.ListComments.Execute(ctx, editorial.ListCommentsRequest{ArticleID: created.ArticleID})
	require.NoError(t, err)
	assert.Empty(t, list.Comments)

	art, err := svc.GetArticle.Execute(ctx, editorial.GetArticleRequest{ArticleID: created.ArticleID})
	require.NoError(t, err)
	assert.Equal(t, "draft", art.Status)
}

func TestService_ValidationReportsEveryField(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, editorial.Config{})

	fieldsOf := func(t *testing.T, err error) map[string]string {
		t.Helper()
		requireKind(t, err, fault.Validation)
		var verr *fault.ValidationError
		require.True(t, errors.As(err, &verr))
		return verr.Fields()
	}

	t.Run("AutoSave", func(t *testing.T) {
		_, err := svc.AutoSave.Execute(ctx, editorial.AutoSaveRequest{
			ArticleID: "bad", Title: "x", Content: "y", Slug: "Bad Slug",
		})
		fields := fieldsOf(t, err)
		assert.Len(t, fields, 4)
		for _, f := range []string{"articleId", "title", "content", "slug"} {
			assert.Contains(t, fields, f)
		}
	})

	t.Run("AddComment", func(t *testing.T) {
		_, err := svc.AddComment.Execute(ctx, editorial.AddCommentRequest{
			ArticleID:     "bad",
			ReviewerID:    strPtr("nope"),
			Comment:       "",
			PositionStart: intPtr(3),
		})
		fields := fieldsOf(t, err)
		assert.Len(t, fields, 5)
		for _, f := range []string{"articleId", "reviewerId", "comment", "selectedText", "positionEnd"} {
			assert.Contains(t, fields, f)
		}
	})

	t.Run("AutoSaveDraftOnly", func(t *testing.T) {
		_, err := svc.AutoSave.Execute(ctx, editorial.AutoSaveRequest{
			ArticleID: uuid.NewString(), Title: "Valid Title Five", Content: "0123456789", Slug: "Bad Slug",
		})
		fields := fieldsOf(t, err)
		assert.Equal(t, []string{"slug"}, keys(fields))
	})
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestService_ListArticles(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, editorial.Config{})

	first := createDraft(t, svc, "list-one")
	createDraft(t, svc, "list-two")
	createDraft(t, svc, "list-three")
	_, err := svc.SubmitForReview.Execute(ctx, editorial.SubmitForReviewRequest{ArticleID: first.ArticleID})
	require.NoError(t, err)

	all, err := svc.ListArticles.Execute(ctx, editorial.ListArticlesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Len(t, all.Articles, 3)

	pending, err := svc.ListArticles.Execute(ctx, editorial.ListArticlesRequest{Status: strPtr("pending_review")})
	require.NoError(t, err)
	assert.Equal(t, 1, pending.Total)
	require.Len(t, pending.Articles, 1)
	assert.Equal(t, first.ArticleID, pending.Articles[0].ArticleID)

	page, err := svc.ListArticles.Execute(ctx, editorial.ListArticlesRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Articles, 1)

	_, err = svc.ListArticles.Execute(ctx, editorial.ListArticlesRequest{Status: strPtr("unknown")})
	requireKind(t, err, fault.Validation)

	_, err = svc.ListArticles.Execute(ctx, editorial.ListArticlesRequest{Limit: editorial.MaxPageSize + 1})
	requireKind(t, err, fault.Validation)
}

// failingRepository fails every call with the configured error.
type failingRepository struct {
	editorial.Repository
	articleByIDFunc func(ctx context.Context, id uuid.UUID) (*article.Article, error)
	saveArticleFunc func(ctx context.Context, a article.Article) error
}

func (r *failingRepository) ArticleByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	if r.articleByIDFunc != nil {
		return r.articleByIDFunc(ctx, id)
	}
	return r.Repository.ArticleByID(ctx, id)
}

func (r *failingRepository) SaveArticle(ctx context.Context, a article.Article) error {
	if r.saveArticleFunc != nil {
		return r.saveArticleFunc(ctx, a)
	}
	return r.Repository.SaveArticle(ctx, a)
}

func TestService_InfrastructureFailure(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	repo := &failingRepository{Repository: memstore.New()}
	svc := editorial.NewService(repo, noOpLogger(), editorial.Config{})

	created := createDraft(t, svc, "flaky-storage")

	repo.saveArticleFunc = func(context.Context, article.Article) error { return storeErr }
	_, err := svc.SubmitForReview.Execute(ctx, editorial.SubmitForReviewRequest{ArticleID: created.ArticleID})
	gerr := requireKind(t, err, fault.Infrastructure)
	assert.ErrorIs(t, gerr, storeErr)

	repo.articleByIDFunc = func(context.Context, uuid.UUID) (*article.Article, error) { return nil, storeErr }
	_, err = svc.GetArticle.Execute(ctx, editorial.GetArticleRequest{ArticleID: created.ArticleID})
	gerr = requireKind(t, err, fault.Infrastructure)
	assert.ErrorIs(t, gerr, storeErr)
}
