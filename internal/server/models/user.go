package models

import "time"

// User is one registered account. Email is stored lower-cased and is unique.
// PasswordHash is the bcrypt hash of the login password; it is never logged
// and never serialized into a response.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
