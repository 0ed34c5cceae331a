package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/authvault/internal/common"
	"github.com/dmitrijs2005/authvault/internal/server/auth"
	"github.com/dmitrijs2005/authvault/internal/server/config"
	"github.com/dmitrijs2005/authvault/internal/server/models"
)

// --- helpers ---

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: 24 * time.Hour,
	}
	return NewService(repo, cfg)
}

// fakeRepo scripts repository responses for failure-path tests; happy paths
// use the real in-memory repository.
type fakeRepo struct {
	createOut *models.User
	createErr error

	getByEmailOut *models.User
	getByEmailErr error

	getByIDOut *models.User
	getByIDErr error
}

func (f *fakeRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	return f.getByEmailOut, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

// --- Register ---

func TestRegister_Success_TokenResolvesToNewID(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	s := newTestService(t, repo)
	ctx := context.Background()

	token, err := s.Register(ctx, "Ana", "ana@x.com", "longpass1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	user, err := repo.GetByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "longpass1" {
		t.Fatalf("stored hash must be non-empty and differ from the plaintext")
	}

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token subject mismatch: got %q want %q", userID, user.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	s := newTestService(t, repo)
	ctx := context.Background()

	if _, err := s.Register(ctx, "Ana", "ana@x.com", "longpass1"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := s.Register(ctx, "Other", "ana@x.com", "otherpass9")
	if !errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("expected common.ErrDuplicateEmail, got %v", err)
	}
}

func TestRegister_DuplicateEmail_CaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	s := newTestService(t, repo)
	ctx := context.Background()

	if _, err := s.Register(ctx, "Ana", "ana@x.com", "longpass1"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := s.Register(ctx, "Ana", "Ana@X.com", "longpass1")
	if !errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("expected common.ErrDuplicateEmail, got %v", err)
	}
}

func TestRegister_DuplicateFromStoreConstraint(t *testing.T) {
	t.Parallel()

	// The pre-check misses (not found) but the insert loses the race and the
	// store reports a constraint violation. Both paths surface the same error.
	repo := &fakeRepo{
		getByEmailErr: common.ErrNotFound,
		createErr:     common.ErrDuplicateEmail,
	}
	s := newTestService(t, repo)

	_, err := s.Register(context.Background(), "Ana", "ana@x.com", "longpass1")
	if !errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("expected common.ErrDuplicateEmail, got %v", err)
	}
}

func TestRegister_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		getByEmailErr: common.ErrNotFound,
		createErr:     errors.New("db down"),
	}
	s := newTestService(t, repo)

	_, err := s.Register(context.Background(), "Ana", "ana@x.com", "longpass1")
	if err == nil || errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestRegister_PrecheckFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{getByEmailErr: errors.New("db down")}
	s := newTestService(t, repo)

	_, err := s.Register(context.Background(), "Ana", "ana@x.com", "longpass1")
	if err == nil || errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

// --- Authenticate ---

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	s := newTestService(t, repo)
	ctx := context.Background()

	if _, err := s.Register(ctx, "Ana", "ana@x.com", "longpass1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	token, err := s.Authenticate(ctx, "ana@x.com", "longpass1")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}

	user, err := repo.GetByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token subject mismatch: got %q want %q", userID, user.ID)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	s := newTestService(t, repo)
	ctx := context.Background()

	if _, err := s.Register(ctx, "Ana", "ana@x.com", "longpass1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := s.Authenticate(ctx, "ana@x.com", "wrong")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected common.ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownEmail_SameError(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	s := newTestService(t, repo)
	ctx := context.Background()

	if _, err := s.Register(ctx, "Ana", "ana@x.com", "longpass1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, errUnknown := s.Authenticate(ctx, "nobody@x.com", "whatever1")
	_, errWrong := s.Authenticate(ctx, "ana@x.com", "wrong")

	// Unknown email and wrong password must be indistinguishable.
	if !errors.Is(errUnknown, common.ErrInvalidCredentials) {
		t.Fatalf("expected common.ErrInvalidCredentials for unknown email, got %v", errUnknown)
	}
	if !errors.Is(errWrong, common.ErrInvalidCredentials) {
		t.Fatalf("expected common.ErrInvalidCredentials for wrong password, got %v", errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("errors must match exactly: %q vs %q", errUnknown, errWrong)
	}
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{getByEmailErr: errors.New("db down")}
	s := newTestService(t, repo)

	_, err := s.Authenticate(context.Background(), "ana@x.com", "longpass1")
	if err == nil || errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

// --- GetByID ---

func TestGetByID_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	s := newTestService(t, repo)
	ctx := context.Background()

	token, err := s.Register(ctx, "Ana", "ana@x.com", "longpass1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if user.Email != "ana@x.com" || user.Name != "Ana" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestServiceGetByID_NotFound(t *testing.T) {
	t.Parallel()

	s := newTestService(t, NewInMemoryRepository())

	_, err := s.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}
