package users

import "strings"

// NormalizeEmail lower-cases and trims an email so that lookups and the
// unique constraint treat "Ana@x.com" and "ana@x.com" as the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
