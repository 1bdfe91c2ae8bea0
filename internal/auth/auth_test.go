package auth

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialCheckers(t *testing.T) {
	for _, scheme := range []string{SchemePlaintext, SchemeBcrypt} {
		t.Run(scheme, func(t *testing.T) {
			c, err := NewCredentialChecker(scheme)
			require.NoError(t, err)

			sealed, err := c.Seal("pw1")
			require.NoError(t, err)
			assert.True(t, c.Match(sealed, "pw1"))
			assert.False(t, c.Match(sealed, "wrong"))
			assert.False(t, c.Match(sealed, ""))
		})
	}
}

func TestPlaintextStoresVerbatim(t *testing.T) {
	sealed, err := Plaintext{}.Seal("pw1")
	require.NoError(t, err)
	assert.Equal(t, "pw1", sealed)
}

func TestNewCredentialChecker_Unknown(t *testing.T) {
	_, err := NewCredentialChecker("md5")
	assert.Error(t, err)
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("super-secret", time.Hour)
	user := models.PublicUser{ID: "abc123", Name: "Alice", Email: "a@x.com"}

	tok, err := tokens.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := tokens.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestTokens_Rejects(t *testing.T) {
	tok, err := NewTokens("right-secret", time.Hour).Generate(models.PublicUser{ID: "u1"})
	require.NoError(t, err)

	_, err = NewTokens("wrong-secret", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewTokens("right-secret", -time.Minute).Generate(models.PublicUser{ID: "u1"})
	require.NoError(t, err)
	_, err = NewTokens("right-secret", time.Hour).Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_Disabled(t *testing.T) {
	tokens := NewTokens("", time.Hour)
	assert.Nil(t, tokens)

	tok, err := tokens.Generate(models.PublicUser{ID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, tok)

	_, err = tokens.Parse("anything")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
