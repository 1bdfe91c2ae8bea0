package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/auth"
	"fintrack/internal/models"
	"fintrack/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Store is what the handlers need from the in-memory store.
type Store interface {
	Register(name, email, password string) (models.PublicUser, error)
	Authenticate(email, password string) (models.PublicUser, error)
	AppendTransaction(in models.NewTransaction) (models.Transaction, error)
	Transactions() []models.Transaction
	Stats() models.Stats
}

type Server struct {
	store     Store
	tokens    *auth.Tokens
	router    *chi.Mux
	logger    *zap.Logger
	staticDir string
}

// NewServer wires the routes. tokens may be nil, in which case no token is
// issued. An empty staticDir disables static file serving.
func NewServer(st Store, tokens *auth.Tokens, logger *zap.Logger, staticDir string) *Server {
	s := &Server{
		store:     st,
		tokens:    tokens,
		logger:    logger,
		staticDir: staticDir,
	}
	s.router = s.RegisterRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// writeStoreError maps store errors onto status codes and the one-line
// messages the browser client shows.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		s.writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, store.ErrDuplicateUser):
		s.writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, store.ErrInvalidCredentials):
		s.writeError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		s.logger.Error("store operation failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
