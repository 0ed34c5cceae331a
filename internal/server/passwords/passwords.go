// Package passwords turns login passwords into stored bcrypt hashes and checks
// candidates against them. The plaintext never leaves this package and the
// hash cannot be reversed into it.
package passwords

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummy is verified against when no account matches a login attempt, so
// missing and existing accounts cost the same amount of work.
var dummy = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

// Hash returns the bcrypt hash of password. bcrypt salts internally, so two
// calls with the same password produce different hashes. An error here means
// a resource failure, not bad input.
func Hash(ctx context.Context, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether password matches hash. It returns false for any
// mismatch, including a malformed hash; it never fails on user-supplied
// plaintext.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyHash returns a process-fixed hash of a throwaway value. Callers verify
// absent-account login attempts against it and discard the result.
func DummyHash() string {
	return dummy
}
