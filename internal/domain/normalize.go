package domain

import (
	"strings"
)

// NormalizeEmail prepares an email address for storage and lookup: surrounding
// whitespace is trimmed and the address is lowercased. Sign-up and sign-in
// must agree on this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
