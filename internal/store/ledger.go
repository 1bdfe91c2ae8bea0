package store

import (
	"fintrack/internal/models"
	"fintrack/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AppendTransaction validates in and records it at the end of the ledger.
func (s *Store) AppendTransaction(in models.NewTransaction) (models.Transaction, error) {
	amountText := utils.AmountText(in.Amount)
	if in.Description == "" || amountText == "" || in.Type == "" {
		return models.Transaction{}, invalid("Missing fields")
	}

	typ := models.TransactionType(in.Type)
	if !typ.Valid() {
		return models.Transaction{}, invalid("Invalid type")
	}

	amount, err := utils.ParseAmount(amountText)
	if err != nil {
		return models.Transaction{}, invalid("Invalid amount")
	}

	category := in.Category
	if category == "" {
		category = models.DefaultCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Transaction{
		ID:          s.newID(),
		Date:        s.now(),
		Description: in.Description,
		Amount:      amount,
		Type:        typ,
		Category:    category,
	}
	s.transactions = append(s.transactions, t)

	s.logger.Debug("transaction appended",
		zap.String("id", t.ID),
		zap.String("type", string(t.Type)),
		zap.Stringer("amount", t.Amount),
		zap.Int("ledger_size", len(s.transactions)),
	)
	return t, nil
}

// Transactions returns a copy of the ledger in insertion order. It is never nil.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ComputeStats(s.transactions)
}

// ComputeStats sums amounts per type. Transactions of any other type are ignored.
func ComputeStats(transactions []models.Transaction) models.Stats {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case models.Income:
			income = income.Add(t.Amount)
		case models.Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return models.Stats{Income: income, Expense: expense, Balance: income.Sub(expense)}
}
