package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/editorial/internal/editorial"
	"github.com/daniilsolovey/editorial/internal/fault"
	"github.com/daniilsolovey/editorial/internal/gateway"
)

var (
	_ zenrpc.Invoker = (*ArticleService)(nil)
	_ zenrpc.Invoker = (*CommentService)(nil)
)

// ArticleService provides RPC methods for the article lifecycle.
type ArticleService struct {
	zenrpc.Service
	svc *editorial.Service
}

func NewArticleService(svc *editorial.Service) *ArticleService {
	return &ArticleService{svc: svc}
}

// Create creates an article in draft, published or archived status.
func (s *ArticleService) Create(ctx context.Context, req editorial.CreateArticleRequest) (*editorial.CreateArticleResponse, error) {
	return execute(ctx, s.svc.CreateArticle, req)
}

// Get returns the full article.
func (s *ArticleService) Get(ctx context.Context, req editorial.GetArticleRequest) (*editorial.ArticleResponse, error) {
	return execute(ctx, s.svc.GetArticle, req)
}

// List returns articles filtered by status and author, newest first.
func (s *ArticleService) List(ctx context.Context, req editorial.ListArticlesRequest) (*editorial.ListArticlesResponse, error) {
	return execute(ctx, s.svc.ListArticles, req)
}

// AutoSave updates title, content and slug without a status change.
func (s *ArticleService) AutoSave(ctx context.Context, req editorial.AutoSaveRequest) (*editorial.AutoSaveResponse, error) {
	return execute(ctx, s.svc.AutoSave, req)
}

// Submit moves a draft or rejected article to pending review.
func (s *ArticleService) Submit(ctx context.Context, req editorial.SubmitForReviewRequest) (*editorial.SubmitForReviewResponse, error) {
	return execute(ctx, s.svc.SubmitForReview, req)
}

// Approve approves an article pending review.
func (s *ArticleService) Approve(ctx context.Context, req editorial.ApproveArticleRequest) (*editorial.ReviewResponse, error) {
	return execute(ctx, s.svc.ApproveArticle, req)
}

// Reject rejects an article pending review. The reason is mandatory.
func (s *ArticleService) Reject(ctx context.Context, req editorial.RejectArticleRequest) (*editorial.ReviewResponse, error) {
	return execute(ctx, s.svc.RejectArticle, req)
}

// Publish publishes an approved article.
func (s *ArticleService) Publish(ctx context.Context, req editorial.PublishArticleRequest) (*editorial.PublishArticleResponse, error) {
	return execute(ctx, s.svc.PublishArticle, req)
}

// DirectPublish publishes a draft without review when the policy allows it.
func (s *ArticleService) DirectPublish(ctx context.Context, req editorial.PublishArticleRequest) (*editorial.PublishArticleResponse, error) {
	return execute(ctx, s.svc.DirectPublish, req)
}

// Archive archives an article.
func (s *ArticleService) Archive(ctx context.Context, req editorial.ArchiveArticleRequest) (*editorial.ArchiveArticleResponse, error) {
	return execute(ctx, s.svc.ArchiveArticle, req)
}

// Delete deletes an article and its comments.
func (s *ArticleService) Delete(ctx context.Context, req editorial.DeleteArticleRequest) (*editorial.DeleteArticleResponse, error) {
	return execute(ctx, s.svc.DeleteArticle, req)
}

func (s *ArticleService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	switch method {
	case "create":
		return dispatch(ctx, params, s.Create)
	case "get":
		return dispatch(ctx, params, s.Get)
	case "list":
		return dispatch(ctx, params, s.List)
	case "autosave":
		return dispatch(ctx, params, s.AutoSave)
	case "submit":
		return dispatch(ctx, params, s.Submit)
	case "approve":
		return dispatch(ctx, params, s.Approve)
	case "reject":
		return dispatch(ctx, params, s.Reject)
	case "publish":
		return dispatch(ctx, params, s.Publish)
	case "directpublish":
		return dispatch(ctx, params, s.DirectPublish)
	case "archive":
		return dispatch(ctx, params, s.Archive)
	case "delete":
		return dispatch(ctx, params, s.Delete)
	default:
		return zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}
}

// CommentService provides RPC methods for reviewer comments.
type CommentService struct {
	zenrpc.Service
	svc *editorial.Service
}

func NewCommentService(svc *editorial.Service) *CommentService {
	return &CommentService{svc: svc}
}

// Create adds a comment, optionally anchored to a text selection.
func (s *CommentService) Create(ctx context.Context, req editorial.AddCommentRequest) (*editorial.CommentResponse, error) {
	return execute(ctx, s.svc.AddComment, req)
}

// List returns the comments of an article in creation order.
func (s *CommentService) List(ctx context.Context, req editorial.ListCommentsRequest) (*editorial.ListCommentsResponse, error) {
	return execute(ctx, s.svc.ListComments, req)
}

// Delete deletes a comment.
func (s *CommentService) Delete(ctx context.Context, req editorial.DeleteCommentRequest) (*editorial.DeleteCommentResponse, error) {
	return execute(ctx, s.svc.DeleteComment, req)
}

func (s *CommentService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	switch method {
	case "create":
		return dispatch(ctx, params, s.Create)
	case "list":
		return dispatch(ctx, params, s.List)
	case "delete":
		return dispatch(ctx, params, s.Delete)
	default:
		return zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}
}

// execute runs the gateway and converts its failure to *zenrpc.Error.
func execute[Req, Resp any](ctx context.Context, g *gateway.Gateway[Req, Resp], req Req) (*Resp, error) {
	resp, err := g.Execute(ctx, req)
	if err != nil {
		return nil, newError(err)
	}
	return &resp, nil
}

// dispatch decodes named params into the method's request.
func dispatch[Req, Resp any](ctx context.Context, params json.RawMessage, method func(context.Context, Req) (*Resp, error)) zenrpc.Response {
	var req Req
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
		}
	}

	resp := zenrpc.Response{}
	result, err := method(ctx, req)
	if err != nil {
		resp.Set(nil, err)
		return resp
	}
	resp.Set(result)
	return resp
}

// newError maps an error kind to an HTTP-like JSON-RPC error code.
func newError(err error) *zenrpc.Error {
	kind := fault.KindOf(err)
	var gerr *gateway.Error
	if errors.As(err, &gerr) {
		kind = gerr.Kind
	}

	switch kind {
	case fault.Validation, fault.InvalidTransition:
		return &zenrpc.Error{Code: http.StatusUnprocessableEntity, Message: err.Error(), Data: kind.String()}
	case fault.NotFound:
		return &zenrpc.Error{Code: http.StatusNotFound, Message: err.Error(), Data: kind.String()}
	case fault.Conflict:
		return &zenrpc.Error{Code: http.StatusConflict, Message: err.Error(), Data: kind.String()}
	default:
		return &zenrpc.Error{Code: http.StatusInternalServerError, Message: "internal error", Data: kind.String()}
	}
}
