package view

import (
	"strings"

	"github.com/MrJamesThe3rd/acme/internal/action"
)

// StatusLine flattens a pipeline outcome into the one-line status the
// dashboard shows under a form.
func StatusLine(out action.Outcome) string {
	if out.Kind == action.Success {
		return "Saved."
	}

	var parts []string

	if out.Message != "" {
		parts = append(parts, out.Message)
	}

	for _, field := range []string{"customerId", "amount", "status", "name", "email", "role_id"} {
		for _, msg := range out.FieldErrors[field] {
			parts = append(parts, msg)
		}
	}

	return strings.Join(parts, " ")
}
