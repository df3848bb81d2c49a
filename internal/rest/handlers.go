package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/editorial/internal/editorial"
	"github.com/daniilsolovey/editorial/internal/fault"
	"github.com/daniilsolovey/editorial/internal/gateway"
)

const kindBadRequest = "bad_request"

// Pinger reports storage health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	svc    *editorial.Service
	pinger Pinger
	log    *slog.Logger
}

// NewHandler creates a handler. pinger may be nil.
func NewHandler(svc *editorial.Service, pinger Pinger, log *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		pinger: pinger,
		log:    log,
	}
}

type ErrorResponse struct {
	Error     string            `json:"error"`
	Kind      string            `json:"kind"`
	Operation string            `json:"operation,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// ArticlesQuery is the query string of GET /api/v1/articles.
type ArticlesQuery struct {
	Status   string `urlstruct:"status"`
	AuthorID string `urlstruct:"author_id"`
	Limit    int    `urlstruct:"limit"`
	Offset   int    `urlstruct:"offset"`
	Page     int    `urlstruct:"page"`
}

func (q ArticlesQuery) request() editorial.ListArticlesRequest {
	req := editorial.ListArticlesRequest{Limit: q.Limit, Offset: q.Offset}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.AuthorID != "" {
		req.AuthorID = &q.AuthorID
	}
	if q.Page > 1 {
		limit := q.Limit
		if limit == 0 {
			limit = editorial.DefaultPageSize
		}
		req.Offset = (q.Page - 1) * limit
	}
	return req
}

func statusCode(kind fault.Kind) int {
	switch kind {
	case fault.Validation, fault.InvalidTransition:
		return http.StatusUnprocessableEntity
	case fault.NotFound:
		return http.StatusNotFound
	case fault.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) handleError(c echo.Context, err error) error {
	kind := fault.KindOf(err)
	resp := ErrorResponse{Error: err.Error()}

	var gerr *gateway.Error
	if errors.As(err, &gerr) {
		kind = gerr.Kind
		resp.Operation = gerr.Op.String()
		resp.Error = gerr.Err.Error()
	}
	resp.Kind = kind.String()

	var verr *fault.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields()
	}

	code := statusCode(kind)
	if kind == fault.Infrastructure {
		resp.Error = "internal error"
	}

	h.log.Error("handleError", "error", err, "statusCode", code, "kind", resp.Kind)
	return c.JSON(code, resp)
}

func (h *Handler) badRequest(c echo.Context, op gateway.Operation, err error) error {
	h.log.Error("handleError", "error", err, "statusCode", http.StatusBadRequest, "kind", kindBadRequest)
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     "invalid request body",
		Kind:      kindBadRequest,
		Operation: op.String(),
	})
}

func execute[Req, Resp any](h *Handler, c echo.Context, g *gateway.Gateway[Req, Resp], req Req, code int) error {
	resp, err := g.Execute(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(code, resp)
}

// CreateArticle handles POST /api/v1/articles
func (h *Handler) CreateArticle(c echo.Context) error {
	var req editorial.CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, h.svc.CreateArticle.Operation(), err)
	}
	return execute(h, c, h.svc.CreateArticle, req, http.StatusCreated)
}

// ListArticles handles GET /api/v1/articles
func (h *Handler) ListArticles(c echo.Context) error {
	var q ArticlesQuery
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &q); err != nil {
		return h.badRequest(c, h.svc.ListArticles.Operation(), err)
	}
	return execute(h, c, h.svc.ListArticles, q.request(), http.StatusOK)
}

// GetArticle handles GET /api/v1/articles/:id
func (h *Handler) GetArticle(c echo.Context) error {
	return execute(h, c, h.svc.GetArticle, editorial.GetArticleRequest{ArticleID: c.Param("id")}, http.StatusOK)
}

// DeleteArticle handles DELETE /api/v1/articles/:id
func (h *Handler) DeleteArticle(c echo.Context) error {
	return execute(h, c, h.svc.DeleteArticle, editorial.DeleteArticleRequest{ArticleID: c.Param("id")}, http.StatusOK)
}

// AutoSave handles PUT /api/v1/articles/:id/autosave
func (h *Handler) AutoSave(c echo.Context) error {
	var req editorial.AutoSaveRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, h.svc.AutoSave.Operation(), err)
	}
	req.ArticleID = c.Param("id")
	return execute(h, c, h.svc.AutoSave, req, http.StatusOK)
}

// SubmitForReview handles POST /api/v1/articles/:id/submit
func (h *Handler) SubmitForReview(c echo.Context) error {
	var req editorial.SubmitForReviewRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, h.svc.SubmitForReview.Operation(), err)
	}
	req.ArticleID = c.Param("id")
	return execute(h, c, h.svc.SubmitForReview, req, http.StatusOK)
}

// ApproveArticle handles POST /api/v1/articles/:id/approve
func (h *Handler) ApproveArticle(c echo.Context) error {
	var req editorial.ApproveArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, h.svc.ApproveArticle.Operation(), err)
	}
	req.ArticleID = c.Param("id")
	return execute(h, c, h.svc.ApproveArticle, req, http.StatusOK)
}

// RejectArticle handles POST /api/v1/articles/:id/reject
func (h *Handler) RejectArticle(c echo.Context) error {
	var req editorial.RejectArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, h.svc.RejectArticle.Operation(), err)
	}
	req.ArticleID = c.Param("id")
	return execute(h, c, h.svc.RejectArticle, req, http.StatusOK)
}

// PublishArticle handles POST /api/v1/articles/:id/publish
func (h *Handler) PublishArticle(c echo.Context) error {
	return execute(h, c, h.svc.PublishArticle, editorial.PublishArticleRequest{ArticleID: c.Param("id")}, http.StatusOK)
}

// DirectPublish handles POST /api/v1/articles/:id/direct-publish
func (h *Handler) DirectPublish(c echo.Context) error {
	return execute(h, c, h.svc.DirectPublish, editorial.PublishArticleRequest{ArticleID: c.Param("id")}, http.StatusOK)
}

// ArchiveArticle handles POST /api/v1/articles/:id/archive
func (h *Handler) ArchiveArticle(c echo.Context) error {
	return execute(h, c, h.svc.ArchiveArticle, editorial.ArchiveArticleRequest{ArticleID: c.Param("id")}, http.StatusOK)
}

// AddComment handles POST /api/v1/articles/:id/comments
func (h *Handler) AddComment(c echo.Context) error {
	var req editorial.AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, h.svc.AddComment.Operation(), err)
	}
	req.ArticleID = c.Param("id")
	return execute(h, c, h.svc.AddComment, req, http.StatusCreated)
}

// ListComments handles GET /api/v1/articles/:id/comments
func (h *Handler) ListComments(c echo.Context) error {
	return execute(h, c, h.svc.ListComments, editorial.ListCommentsRequest{ArticleID: c.Param("id")}, http.StatusOK)
}

// DeleteComment handles DELETE /api/v1/comments/:id
func (h *Handler) DeleteComment(c echo.Context) error {
	return execute(h, c, h.svc.DeleteComment, editorial.DeleteCommentRequest{CommentID: c.Param("id")}, http.StatusOK)
}
