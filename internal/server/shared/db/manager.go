package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authvault/internal/server/users"
)

// RepositoryManager wires repositories to their backing store and owns the
// store's lifecycle.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
