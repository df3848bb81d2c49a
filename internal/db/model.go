// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Article struct {
		ID, Title, Content, Slug, Status, AuthorID, ReviewerID, SubmittedAt, ReviewedAt, PublishedAt, ApprovalReason, RejectionReason, CreatedAt, UpdatedAt string
	}
	EditorialComment struct {
		ID, ArticleID, ReviewerID, Comment, SelectedText, PositionStart, PositionEnd, CreatedAt string

		Article string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Article: struct {
		ID, Title, Content, Slug, Status, AuthorID, ReviewerID, SubmittedAt, ReviewedAt, PublishedAt, ApprovalReason, RejectionReason, CreatedAt, UpdatedAt string
	}{
		ID:              "articleId",
		Title:           "title",
		Content:         "content",
		Slug:            "slug",
		Status:          "status",
		AuthorID:        "authorId",
		ReviewerID:      "reviewerId",
		SubmittedAt:     "submittedAt",
		ReviewedAt:      "reviewedAt",
		PublishedAt:     "publishedAt",
		ApprovalReason:  "approvalReason",
		RejectionReason: "rejectionReason",
		CreatedAt:       "createdAt",
		UpdatedAt:       "updatedAt",
	},
	EditorialComment: struct {
		ID, ArticleID, ReviewerID, Comment, SelectedText, PositionStart, PositionEnd, CreatedAt string

		Article string
	}{
		ID:            "commentId",
		ArticleID:     "articleId",
		ReviewerID:    "reviewerId",
		Comment:       "comment",
		SelectedText:  "selectedText",
		PositionStart: "positionStart",
		PositionEnd:   "positionEnd",
		CreatedAt:     "createdAt",

		Article: "Article",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	EditorialComment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	EditorialComment: struct {
		Name, Alias string
	}{
		Name:  "editorialComments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID              string     `pg:"articleId,pk,type:uuid"`
	Title           string     `pg:"title,use_zero"`
	Content         string     `pg:"content,use_zero"`
	Slug            string     `pg:"slug,use_zero"`
	Status          string     `pg:"status,use_zero"`
	AuthorID        *string    `pg:"authorId,type:uuid"`
	ReviewerID      *string    `pg:"reviewerId,type:uuid"`
	SubmittedAt     *time.Time `pg:"submittedAt"`
	ReviewedAt      *time.Time `pg:"reviewedAt"`
	PublishedAt     *time.Time `pg:"publishedAt"`
	ApprovalReason  *string    `pg:"approvalReason"`
	RejectionReason *string    `pg:"rejectionReason"`
	CreatedAt       time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt       time.Time  `pg:"updatedAt,use_zero"`
}

type EditorialComment struct {
	tableName struct{} `pg:"editorialComments,alias:t,discard_unknown_columns"`

	ID            string    `pg:"commentId,pk,type:uuid"`
	ArticleID     string    `pg:"articleId,type:uuid,use_zero"`
	ReviewerID    *string   `pg:"reviewerId,type:uuid"`
	Comment       string    `pg:"comment,use_zero"`
	SelectedText  *string   `pg:"selectedText"`
	PositionStart *int      `pg:"positionStart"`
	PositionEnd   *int      `pg:"positionEnd"`
	CreatedAt     time.Time `pg:"createdAt,use_zero"`

	Article *Article `pg:"fk:articleId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
