// Package httpapi exposes registration, login, and the authenticated profile
// endpoint over HTTP JSON. Field validation and response shaping live here;
// business rules stay in the users service.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authvault/internal/logging"
	"github.com/dmitrijs2005/authvault/internal/server/users"
)

const (
	// requestTimeout bounds store and hashing work done for one request.
	requestTimeout = 10 * time.Second

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *users.Service, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the route table. Method-qualified patterns make the mux
// answer 405 for wrong methods on known paths.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.Handle("GET /api/auth/me", s.requireAuth(http.HandlerFunc(s.handleMe)))
	mux.HandleFunc("GET /api/auth/ping", s.handlePing)
	return s.withRequestID(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
