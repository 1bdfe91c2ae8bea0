package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.Len(t, id, idLength)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestAmountText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "absent", raw: "", want: ""},
		{name: "null", raw: "null", want: ""},
		{name: "number", raw: "4.5", want: "4.5"},
		{name: "string", raw: `"1000"`, want: "1000"},
		{name: "empty string", raw: `""`, want: ""},
		{name: "false", raw: "false", want: ""},
		{name: "number zero", raw: "0", want: ""},
		{name: "number zero fraction", raw: "0.0", want: ""},
		{name: "number negative zero", raw: "-0", want: ""},
		{name: "string zero", raw: `"0"`, want: "0"},
		{name: "true", raw: "true", want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountText(json.RawMessage(tt.raw)))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "4.50", want: "4.5"},
		{in: " 1000 ", want: "1000"},
		{in: "0", want: "0"},
		{in: "-0", want: "0"},
		{in: "abc", wantErr: true},
		{in: "12abc", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "0x1p4", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)
	assert.True(t, CheckPasswordHash("pw1", hash))
	assert.False(t, CheckPasswordHash("pw2", hash))
}
