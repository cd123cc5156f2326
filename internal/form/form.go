package form

import (
	"net/mail"
	"strings"
)

// Values is the raw submitted form: a flat mapping from field name to
// the textual value the presentation layer collected.
type Values map[string]string

func (v Values) Get(field string) string {
	return strings.TrimSpace(v[field])
}

// Errors collects validation messages per field, in the order the
// rules rejected them. A nil or empty Errors means the form is valid.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// ValidEmail reports whether raw is a plain, syntactically valid
// address (no display name, dotted domain).
func ValidEmail(raw string) bool {
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")

	return strings.Contains(addr.Address[at+1:], ".")
}
