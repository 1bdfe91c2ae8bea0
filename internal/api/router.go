package api

import (
	"net/http"
	"os"

	"fintrack/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func (s *Server) RegisterRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Identify(s.tokens))
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Heartbeat("/ping"))

	r.Post("/api/register", s.register)
	r.Post("/api/login", s.login)

	r.Get("/api/transactions", s.listTransactions)
	r.Post("/api/transactions", s.createTransaction)

	r.Get("/api/stats", s.getStats)

	if s.staticDir != "" {
		if info, err := os.Stat(s.staticDir); err == nil && info.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
		}
	}

	return r
}
