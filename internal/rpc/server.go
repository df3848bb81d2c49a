package rpc

import (
	"log/slog"
	"net/http"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/editorial/internal/editorial"
)

const (
	NamespaceArticle = "article"
	NamespaceComment = "comment"
)

// New exposes the editorial gateways over JSON-RPC 2.0.
func New(logger *slog.Logger, svc *editorial.Service) http.Handler {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NamespaceArticle, NewArticleService(svc))
	rpcServer.Register(NamespaceComment, NewCommentService(svc))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "editorial", nil))

	return rpcServer
}
