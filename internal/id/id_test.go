package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	got, err := New()
	require.NoError(t, err)

	u, err := uuid.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
}

func TestNew_UniqueAndOrdered(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 1000; i++ {
		got, err := New()
		require.NoError(t, err)
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true
		assert.Greater(t, got, prev, "ids should be monotonic")
		prev = got
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0190b6f4-7c1e-7a3b-9d2f-3c4b5a6d7e8f", true},
		{"1709251200000", true},
		{"", false},
		{"-42", false},
		{"12.5", false},
		{"not-an-id", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.input), "Valid(%q)", tt.input)
	}
}
