package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const idLength = 12

var ErrInvalidAmount = errors.New("invalid amount")

// NewID returns a short random identifier. Uniqueness rests on collision odds only.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idLength]
}

// AmountText turns a raw JSON amount into text for ParseAmount. Falsy values
// (absent, null, false, "" and any numeric zero) become the empty string. A
// string "0" is kept: only the JSON number zero counts as falsy.
func AmountText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("false")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	}
	if d, err := decimal.NewFromString(string(raw)); err == nil && d.IsZero() {
		return ""
	}
	return string(raw)
}

// ParseAmount parses a non-negative decimal. Negative zero comes back as zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	return d, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
