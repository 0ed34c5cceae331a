package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authvault/internal/server/users"
)

// InMemoryRepositoryManager backs the server with the in-memory user store.
// Accounts do not survive a restart; intended for tests and local runs.
type InMemoryRepositoryManager struct {
	users users.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}
