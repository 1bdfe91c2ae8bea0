package api

import (
	"encoding/json"
	"net/http"

	"fintrack/internal/models"

	"go.uber.org/zap"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.store.Register(req.Name, req.Email, req.Password)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	s.respondAuthenticated(w, "Registration successful", user)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	s.respondAuthenticated(w, "Login successful", user)
}

func (s *Server) respondAuthenticated(w http.ResponseWriter, message string, user models.PublicUser) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("error generating token", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	s.writeJSON(w, http.StatusOK, models.AuthResponse{
		Message: message,
		User:    user,
		Token:   token,
	})
}
