package api

import (
	"encoding/json"
	"net/http"

	"fintrack/internal/models"
)

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Transactions())
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := s.store.AppendTransaction(models.NewTransaction{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, t)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Stats())
}
