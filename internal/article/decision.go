package article

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/daniilsolovey/editorial/internal/fault"
)

const MaxReasonLength = 1000

type Verdict string

const (
	VerdictApproved Verdict = "approved"
	VerdictRejected Verdict = "rejected"
)

// ReviewDecision is one reviewer verdict. Construct it with Approve or Reject.
type ReviewDecision struct {
	verdict Verdict
	reason  string
}

// NotBlank rejects strings made only of whitespace.
var NotBlank = validation.NewStringRule(func(s string) bool {
	return strings.TrimSpace(s) != ""
}, "cannot be blank")

// Approve builds an approval. The reason is optional.
func Approve(reason *string) (ReviewDecision, error) {
	if reason == nil {
		return ReviewDecision{verdict: VerdictApproved}, nil
	}
	err := validation.Validate(*reason, validation.RuneLength(0, MaxReasonLength))
	if err != nil {
		return ReviewDecision{}, fault.Invalid(validation.Errors{"reason": err})
	}
	return ReviewDecision{verdict: VerdictApproved, reason: *reason}, nil
}

// Reject builds a rejection. The reason is mandatory.
func Reject(reason string) (ReviewDecision, error) {
	err := validation.Validate(reason,
		validation.Required,
		NotBlank,
		validation.RuneLength(1, MaxReasonLength),
	)
	if err != nil {
		return ReviewDecision{}, fault.Invalid(validation.Errors{"reason": err})
	}
	return ReviewDecision{verdict: VerdictRejected, reason: reason}, nil
}

func (d ReviewDecision) Verdict() Verdict { return d.verdict }

func (d ReviewDecision) IsApproved() bool { return d.verdict == VerdictApproved }

// Reason returns the reason and whether one was given.
func (d ReviewDecision) Reason() (string, bool) {
	return d.reason, d.reason != ""
}

func (d ReviewDecision) action() Action {
	if d.IsApproved() {
		return ActionApprove
	}
	return ActionReject
}
