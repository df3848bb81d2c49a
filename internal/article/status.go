package article

import (
	"fmt"
	"strings"

	"github.com/daniilsolovey/editorial/internal/fault"
)

type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusPublished     Status = "published"
	StatusArchived      Status = "archived"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusDraft,
	StatusPendingReview,
	StatusApproved,
	StatusRejected,
	StatusPublished,
	StatusArchived,
}

func (s Status) IsValid() bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown article status %q: %w", s, fault.ErrValidation)
	}
	return st, nil
}

// CanBeSubmittedForReview reports whether the author may submit or resubmit.
func (s Status) CanBeSubmittedForReview() bool { return s.Allows(ActionSubmit) }

// CanBeReviewed reports whether a reviewer may approve or reject.
func (s Status) CanBeReviewed() bool { return s.Allows(ActionApprove) && s.Allows(ActionReject) }

// CanBePublished reports whether publication through the review path is allowed.
func (s Status) CanBePublished() bool { return s.Allows(ActionPublish) }

func (s Status) Allows(a Action) bool {
	r, ok := transitions[a]
	if !ok {
		return false
	}
	return r.allows(s)
}

type Action string

const (
	ActionSubmit        Action = "submit"
	ActionApprove       Action = "approve"
	ActionReject        Action = "reject"
	ActionPublish       Action = "publish"
	ActionDirectPublish Action = "direct_publish"
	ActionArchive       Action = "archive"
)

// Actions lists every action of the transition table.
var Actions = []Action{
	ActionSubmit,
	ActionApprove,
	ActionReject,
	ActionPublish,
	ActionDirectPublish,
	ActionArchive,
}

type rule struct {
	from []Status
	to   Status
}

func (r rule) allows(s Status) bool {
	for _, f := range r.from {
		if f == s {
			return true
		}
	}
	return false
}

var transitions = map[Action]rule{
	ActionSubmit:        {from: []Status{StatusDraft, StatusRejected}, to: StatusPendingReview},
	ActionApprove:       {from: []Status{StatusPendingReview}, to: StatusApproved},
	ActionReject:        {from: []Status{StatusPendingReview}, to: StatusRejected},
	ActionPublish:       {from: []Status{StatusApproved}, to: StatusPublished},
	ActionDirectPublish: {from: []Status{StatusDraft}, to: StatusPublished},
	ActionArchive: {
		from: []Status{StatusDraft, StatusPendingReview, StatusApproved, StatusRejected, StatusPublished},
		to:   StatusArchived,
	},
}

// AllowedFrom returns a copy of the source statuses of an action.
func AllowedFrom(a Action) []Status {
	r := transitions[a]
	return append([]Status(nil), r.from...)
}

// Next resolves the target status of an action or returns a *TransitionError.
func Next(from Status, a Action) (Status, error) {
	r, ok := transitions[a]
	if !ok {
		return "", fmt.Errorf("unknown action %q: %w", a, fault.ErrValidation)
	}
	if !r.allows(from) {
		return "", &TransitionError{From: from, Action: a, Allowed: AllowedFrom(a)}
	}
	return r.to, nil
}

// TransitionError reports a state-machine predicate that was false for the requested action.
type TransitionError struct {
	From    Status
	Action  Action
	Allowed []Status
}

func (e *TransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	if len(allowed) == 0 {
		return fmt.Sprintf("cannot %s article in status %q", e.Action, e.From)
	}
	return fmt.Sprintf("cannot %s article in status %q (allowed from: %s)", e.Action, e.From, strings.Join(allowed, ", "))
}

func (e *TransitionError) Is(target error) bool {
	return target == fault.ErrInvalidTransition
}
