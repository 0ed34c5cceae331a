package httpapi

import (
	"net/mail"
	"strings"
)

// Validation runs before the service is called and reports the first failing
// rule's message, or "" when the request is well-formed. Business failures
// (duplicate email, bad credentials) are not its concern.

func validateRegister(req registerRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if !validEmail(req.Email) {
		return "invalid email"
	}
	if len(req.Password) < 8 {
		return "password must be at least 8 characters"
	}
	return ""
}

func validateLogin(req loginRequest) string {
	if !validEmail(req.Email) {
		return "invalid email"
	}
	if req.Password == "" {
		return "password is required"
	}
	return ""
}

// validEmail accepts a bare address only, not the "Name <addr>" form
// mail.ParseAddress would also allow.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
