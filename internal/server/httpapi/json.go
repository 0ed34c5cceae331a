package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// response is the envelope every auth endpoint answers with. Token is set
// only on successful register/login.
type response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// userResponse is the authenticated profile shape. The password hash is
// deliberately absent from it.
type userResponse struct {
	Status    int       `json:"status"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response{Status: status, Message: msg})
}

func writeToken(w http.ResponseWriter, status int, msg, token string) {
	writeJSON(w, status, response{Status: status, Message: msg, Token: token})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	defer func() { _ = r.Body.Close() }()

	body := http.MaxBytesReader(w, r.Body, maxBytes)
	return json.NewDecoder(body).Decode(dst)
}
