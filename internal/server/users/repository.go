// Package users holds the account repository and the registration/login
// service built on top of it.
package users

import (
	"context"

	"github.com/dmitrijs2005/authvault/internal/server/models"
)

// Repository persists accounts keyed by a unique email. Create is
// insert-if-absent: the implementation's unique constraint is the
// authoritative duplicate check, and a conflicting insert yields
// common.ErrDuplicateEmail.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
