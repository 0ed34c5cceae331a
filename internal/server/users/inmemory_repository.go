package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/authvault/internal/common"
	"github.com/dmitrijs2005/authvault/internal/server/models"
)

// InMemoryRepository keeps accounts in a map guarded by a mutex. It backs
// tests and secret-only local runs; the duplicate check happens under the
// same lock as the insert, mirroring the Postgres unique constraint.
type InMemoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := NormalizeEmail(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, common.ErrDuplicateEmail
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.byEmail[key] = &stored
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[NormalizeEmail(email)]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *user
	return &out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *user
	return &out, nil
}
