package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts travel as JSON numbers, as the browser client expects
	decimal.MarshalJSONWithoutQuotes = true
}

type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DefaultCategory is assigned when a transaction is recorded without one.
const DefaultCategory = "General"

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
}

// NewTransaction carries unvalidated input for the ledger. Amount is the raw
// JSON value so that numbers and numeric strings go through the same parser.
type NewTransaction struct {
	Description string
	Amount      json.RawMessage
	Type        string
	Category    string
}

// CreateTransactionRequest is the body of POST /api/transactions. Amount is
// raw because browser forms post it as a string.
type CreateTransactionRequest struct {
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
}

type Stats struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}
