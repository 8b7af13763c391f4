package api

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/edugradeai/edugrade/internal/middleware"
)

type loginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// POST /api/auth/login — checks the configured admin credentials and
// issues a bearer token for the analytics endpoints.
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rt.auth.AdminUser == "" || rt.auth.AdminPasswordHash == "" {
		writeError(w, http.StatusServiceUnavailable, "login not configured")
		return
	}
	if req.User != rt.auth.AdminUser ||
		bcrypt.CompareHashAndPassword([]byte(rt.auth.AdminPasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := middleware.SignToken([]byte(rt.auth.JWTSecret), req.User, rt.auth.TokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "unable to issue token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
