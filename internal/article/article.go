// Package article holds the Article aggregate and its editorial lifecycle.
//
// Every transition returns a new snapshot; a snapshot is never modified in place.
package article

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/daniilsolovey/editorial/internal/fault"
)

const (
	MinTitleLength   = 5
	MaxTitleLength   = 200
	MinContentLength = 10
	MaxSlugLength    = 250
)

var SlugRegexp = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var (
	ErrAlreadyPublished = fmt.Errorf("article already published: %w", fault.ErrConflict)
	ErrPublishedLocked  = fmt.Errorf("published article can only change through the editorial approval path: %w", fault.ErrInvalidTransition)
	ErrNotAuthor        = fmt.Errorf("only the author may submit the article: %w", fault.ErrInvalidTransition)
	errNoDecision       = errors.New("review decision is empty")
)

type Article struct {
	ID              uuid.UUID
	Title           string
	Content         string
	Slug            string
	Status          Status
	AuthorID        *uuid.UUID
	ReviewerID      *uuid.UUID
	SubmittedAt     *time.Time
	ReviewedAt      *time.Time
	PublishedAt     *time.Time
	ApprovalReason  *string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Draft holds the author-editable fields.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
}

func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.RuneLength(MinTitleLength, MaxTitleLength)),
		validation.Field(&d.Content, validation.Required, validation.RuneLength(MinContentLength, 0)),
		validation.Field(&d.Slug,
			validation.Required,
			validation.RuneLength(1, MaxSlugLength),
			validation.Match(SlugRegexp).Error("must contain lowercase letters and digits separated by single hyphens"),
		),
	)
}

// New creates a draft article.
func New(id uuid.UUID, d Draft, authorID *uuid.UUID, now time.Time) (Article, error) {
	a := Article{
		ID:        id,
		Title:     d.Title,
		Content:   d.Content,
		Slug:      d.Slug,
		Status:    StatusDraft,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.Validate(); err != nil {
		return Article{}, err
	}
	return a, nil
}

// Validate checks the aggregate invariants.
func (a Article) Validate() error {
	if err := a.Draft().Validate(); err != nil {
		return fault.Invalid(err)
	}
	if a.ID == uuid.Nil {
		return fault.Invalid(validation.Errors{"id": errors.New("cannot be blank")})
	}
	if !a.Status.IsValid() {
		return fault.Invalid(validation.Errors{"status": fmt.Errorf("unknown status %q", a.Status)})
	}
	if (a.Status == StatusPublished) != (a.PublishedAt != nil) {
		return fault.Invalid(validation.Errors{"publishedAt": errors.New("must be set if and only if the article is published")})
	}
	if (a.ReviewedAt == nil) != (a.ReviewerID == nil) {
		return fault.Invalid(validation.Errors{"reviewedAt": errors.New("must be recorded together with reviewerId")})
	}
	return nil
}

func (a Article) Draft() Draft {
	return Draft{Title: a.Title, Content: a.Content, Slug: a.Slug}
}

// Submit moves a draft or rejected article to review. A resubmission starts a new review cycle.
func (a Article) Submit(authorID *uuid.UUID, now time.Time) (Article, error) {
	to, err := Next(a.Status, ActionSubmit)
	if err != nil {
		return a, err
	}
	if authorID != nil && a.AuthorID != nil && *authorID != *a.AuthorID {
		return a, ErrNotAuthor
	}

	next := a
	if next.AuthorID == nil && authorID != nil {
		id := *authorID
		next.AuthorID = &id
	}
	next.Status = to
	next.SubmittedAt = &now
	next.ReviewerID = nil
	next.ReviewedAt = nil
	next.ApprovalReason = nil
	next.RejectionReason = nil
	next.UpdatedAt = now
	return next, nil
}

// Review records a reviewer decision on an article pending review.
func (a Article) Review(reviewerID uuid.UUID, d ReviewDecision, now time.Time) (Article, error) {
	if d.Verdict() == "" {
		return a, fault.Invalid(validation.Errors{"decision": errNoDecision})
	}
	if reviewerID == uuid.Nil {
		return a, fault.Invalid(validation.Errors{"reviewerId": errors.New("cannot be blank")})
	}

	to, err := Next(a.Status, d.action())
	if err != nil {
		return a, err
	}

	next := a
	next.Status = to
	next.ReviewerID = &reviewerID
	next.ReviewedAt = &now
	next.ApprovalReason = nil
	next.RejectionReason = nil
	if reason, ok := d.Reason(); ok {
		if d.IsApproved() {
			next.ApprovalReason = &reason
		} else {
			next.RejectionReason = &reason
		}
	}
	next.UpdatedAt = now
	return next, nil
}

// Publish publishes an approved article.
func (a Article) Publish(now time.Time) (Article, error) {
	if a.Status == StatusPublished {
		return a, ErrAlreadyPublished
	}
	return a.publish(ActionPublish, now)
}

// DirectPublish publishes a draft without review. Callers decide whether the fast track is enabled.
func (a Article) DirectPublish(now time.Time) (Article, error) {
	if a.Status == StatusPublished {
		return a, ErrAlreadyPublished
	}
	return a.publish(ActionDirectPublish, now)
}

func (a Article) publish(action Action, now time.Time) (Article, error) {
	to, err := Next(a.Status, action)
	if err != nil {
		return a, err
	}
	next := a
	next.Status = to
	next.PublishedAt = &now
	next.UpdatedAt = now
	return next, nil
}

// Archive is the administrative exit from any non-archived status.
func (a Article) Archive(now time.Time) (Article, error) {
	to, err := Next(a.Status, ActionArchive)
	if err != nil {
		return a, err
	}
	next := a
	next.Status = to
	next.PublishedAt = nil
	next.UpdatedAt = now
	return next, nil
}

// Revise replaces the editable fields without a status change. Published articles are locked.
func (a Article) Revise(d Draft, now time.Time) (Article, error) {
	if a.Status == StatusPublished {
		return a, ErrPublishedLocked
	}
	if err := d.Validate(); err != nil {
		return a, fault.Invalid(err)
	}
	next := a
	next.Title = d.Title
	next.Content = d.Content
	next.Slug = d.Slug
	next.UpdatedAt = now
	return next, nil
}
