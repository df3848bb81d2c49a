package rpc

import (
	"github.com/vmkteam/zenrpc/v2/smd"
)

var (
	articleIDParam = param("articleId", smd.String, "article UUID")
	reviewerParam  = param("reviewerId", smd.String, "reviewer UUID")

	articleReturn = smd.JSONSchema{Type: smd.Object, Description: "article state after the operation"}

	transitionErrors = map[int]string{
		404: "article not found",
		409: "conflict",
		422: "invalid request or transition",
		500: "internal error",
	}
)

func param(name, typ, description string) smd.JSONSchema {
	return smd.JSONSchema{Name: name, Type: typ, Description: description}
}

func optional(name, typ, description string) smd.JSONSchema {
	p := param(name, typ, description)
	p.Optional = true
	return p
}

func (s *ArticleService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Description: "Article lifecycle: authoring, review and publication.",
		Methods: map[string]smd.Service{
			"create": {
				Description: "Creates an article in draft, published or archived status.",
				Parameters: []smd.JSONSchema{
					param("title", smd.String, "5 to 200 characters"),
					param("content", smd.String, "at least 10 characters"),
					param("slug", smd.String, "lowercase letters and digits separated by single hyphens"),
					param("status", smd.String, "draft, published or archived"),
					optional("createdAt", smd.String, "RFC 3339 creation time"),
					optional("authorId", smd.String, "author UUID"),
				},
				Returns: articleReturn,
				Errors: map[int]string{
					409: "slug already exists",
					422: "invalid request or direct publishing disabled",
					500: "internal error",
				},
			},
			"get": {
				Description: "Returns the full article.",
				Parameters:  []smd.JSONSchema{articleIDParam},
				Returns:     articleReturn,
				Errors:      transitionErrors,
			},
			"list": {
				Description: "Lists articles filtered by status and author, newest first.",
				Parameters: []smd.JSONSchema{
					optional("status", smd.String, "status filter"),
					optional("authorId", smd.String, "author UUID filter"),
					optional("limit", smd.Integer, "page size, 20 by default, at most 100"),
					optional("offset", smd.Integer, "number of articles to skip"),
				},
				Returns: smd.JSONSchema{Type: smd.Object, Description: "articles and total count"},
				Errors: map[int]string{
					422: "invalid filter",
					500: "internal error",
				},
			},
			"autosave": {
				Description: "Updates title, content and slug without a status change.",
				Parameters: []smd.JSONSchema{
					articleIDParam,
					param("title", smd.String, "5 to 200 characters"),
					param("content", smd.String, "at least 10 characters"),
					param("slug", smd.String, "lowercase letters and digits separated by single hyphens"),
				},
				Returns: articleReturn,
				Errors:  transitionErrors,
			},
			"submit": {
				Description: "Submits a draft or rejected article for review.",
				Parameters: []smd.JSONSchema{
					articleIDParam,
					optional("authorId", smd.String, "submitting author UUID"),
				},
				Returns: articleReturn,
				Errors:  transitionErrors,
			},
			"approve": {
				Description: "Approves an article pending review.",
				Parameters: []smd.JSONSchema{
					articleIDParam,
					reviewerParam,
					optional("reason", smd.String, "approval note"),
				},
				Returns: articleReturn,
				Errors:  transitionErrors,
			},
			"reject": {
				Description: "Rejects an article pending review with a reason.",
				Parameters: []smd.JSONSchema{
					articleIDParam,
					reviewerParam,
					param("reason", smd.String, "non-blank rejection reason"),
				},
				Returns: articleReturn,
				Errors:  transitionErrors,
			},
			"publish": {
				Description: "Publishes an approved article.",
				Parameters:  []smd.JSONSchema{articleIDParam},
				Returns:     articleReturn,
				Errors:      transitionErrors,
			},
			"directpublish": {
				Description: "Publishes a draft without review when the policy allows it.",
				Parameters:  []smd.JSONSchema{articleIDParam},
				Returns:     articleReturn,
				Errors:      transitionErrors,
			},
			"archive": {
				Description: "Archives an article.",
				Parameters:  []smd.JSONSchema{articleIDParam},
				Returns:     articleReturn,
				Errors:      transitionErrors,
			},
			"delete": {
				Description: "Deletes an article and its comments.",
				Parameters:  []smd.JSONSchema{articleIDParam},
				Returns:     smd.JSONSchema{Type: smd.Object, Description: "deleted article id"},
				Errors:      transitionErrors,
			},
		},
	}
}

func (s *CommentService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Description: "Reviewer comments on articles.",
		Methods: map[string]smd.Service{
			"create": {
				Description: "Adds a comment, optionally anchored to a text selection.",
				Parameters: []smd.JSONSchema{
					articleIDParam,
					optional("reviewerId", smd.String, "reviewer UUID"),
					param("comment", smd.String, "comment text, at most 2000 characters"),
					optional("selectedText", smd.String, "anchored text, required with positions"),
					optional("positionStart", smd.Integer, "selection start offset"),
					optional("positionEnd", smd.Integer, "selection end offset, greater than positionStart"),
				},
				Returns: smd.JSONSchema{Type: smd.Object, Description: "created comment"},
				Errors: map[int]string{
					404: "article not found",
					422: "invalid comment",
					500: "internal error",
				},
			},
			"list": {
				Description: "Lists comments of an article in creation order.",
				Parameters:  []smd.JSONSchema{articleIDParam},
				Returns:     smd.JSONSchema{Type: smd.Object, Description: "comments of the article"},
				Errors: map[int]string{
					404: "article not found",
					422: "invalid article id",
					500: "internal error",
				},
			},
			"delete": {
				Description: "Deletes a comment.",
				Parameters:  []smd.JSONSchema{param("commentId", smd.String, "comment UUID")},
				Returns:     smd.JSONSchema{Type: smd.Object, Description: "deleted comment id"},
				Errors: map[int]string{
					404: "comment not found",
					422: "invalid comment id",
					500: "internal error",
				},
			},
		},
	}
}
