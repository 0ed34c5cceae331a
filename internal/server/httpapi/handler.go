package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authvault/internal/common"
)

const (
	msgRegistered         = "registered"
	msgLoginSuccessful    = "login successful"
	msgDuplicateEmail     = "email already in use"
	msgInvalidCredentials = "invalid email or password"
	msgRegisterError      = "error registering"
	msgLoginError         = "error logging in"
	msgInvalidBody        = "invalid request body"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req registerRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if msg := validateRegister(req); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	token, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, msgDuplicateEmail)
			return
		}
		// Internal detail stays in the log; the client gets the generic message.
		s.logger.Error(ctx, "registration failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgRegisterError)
		return
	}

	s.logger.Info(ctx, "registered", "email", req.Email)
	writeToken(w, http.StatusCreated, msgRegistered, token)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req loginRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if msg := validateLogin(req); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	token, err := s.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		s.logger.Error(ctx, "login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgLoginError)
		return
	}

	writeToken(w, http.StatusOK, msgLoginSuccessful, token)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	userID, _ := r.Context().Value(userIDKey).(string)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Valid signature but the account is gone.
			writeMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}
		s.logger.Error(ctx, "profile lookup failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Status:    http.StatusOK,
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "OK")
}
