package devserver

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to hash password")
		writeError(w, r, http.StatusInternalServerError, "failed to register user")
		return
	}

	s.mu.Lock()
	if _, exists := s.users[req.Username]; exists {
		s.mu.Unlock()
		writeError(w, r, http.StatusConflict, "Username already exists")
		return
	}
	s.users[req.Username] = userRecord{name: req.Name, passwordHash: passwordHash}
	s.mu.Unlock()

	logger.FromRequest(r).Info().Str("username", req.Username).Msg("user registered")
	writeJSON(w, http.StatusCreated, models.SuccessResponse{Message: "User registered successfully"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.RLock()
	user, exists := s.users[req.Username]
	s.mu.RUnlock()

	if !exists || bcrypt.CompareHashAndPassword(user.passwordHash, []byte(req.Password)) != nil {
		writeError(w, r, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, req.Username, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to issue token")
		writeError(w, r, http.StatusInternalServerError, "failed to issue token")
		return
	}

	logger.FromRequest(r).Info().Str("username", req.Username).Msg("user logged in")
	writeJSON(w, http.StatusOK, models.AuthResponse{AccessToken: token.SignedString})
}
