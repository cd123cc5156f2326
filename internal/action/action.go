// Package action defines the outcome a mutation pipeline hands back to
// the presentation layer. Every submission terminates in exactly one
// Kind; the caller decides what to render or where to navigate.
package action

import "github.com/MrJamesThe3rd/acme/internal/form"

type Kind int

const (
	// Success means the write committed and the listed view was
	// invalidated; Redirect names the listing route to navigate to.
	Success Kind = iota

	// Invalid means schema validation rejected the submission;
	// FieldErrors carries the per-field messages and nothing was
	// written.
	Invalid

	// NoChange means an edit proposed values identical to the stored
	// row; the write was skipped.
	NoChange

	// NotFound means the row an edit targeted does not exist.
	NotFound

	// DomainError means a business rule rejected the submission
	// before any write.
	DomainError

	// StorageFault means the store failed during the write. The raw
	// fault is logged server-side; Message stays generic.
	StorageFault
)

type Outcome struct {
	Kind        Kind
	Message     string
	FieldErrors form.Errors

	// Set on Success only.
	Redirect string
}

func Succeeded(redirect string) Outcome {
	return Outcome{Kind: Success, Redirect: redirect}
}

func Rejected(message string, errs form.Errors) Outcome {
	return Outcome{Kind: Invalid, Message: message, FieldErrors: errs}
}

func Unchanged() Outcome {
	return Outcome{Kind: NoChange, Message: "No changes detected."}
}

func Missing(message string) Outcome {
	return Outcome{Kind: NotFound, Message: message}
}

func RuleViolation(message string) Outcome {
	return Outcome{Kind: DomainError, Message: message}
}

func Faulted(message string) Outcome {
	return Outcome{Kind: StorageFault, Message: message}
}
