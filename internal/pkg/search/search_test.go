package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerm(t *testing.T) {
	tests := []struct {
		name string
		q    string
		want string
	}{
		{"empty", "", ""},
		{"two chars are below the gate", "pi", ""},
		{"two chars padded with spaces", "  pi  ", ""},
		{"three chars pass", "pik", "pik"},
		{"uppercase is lowered", "PIKA", "pika"},
		{"surrounding spaces trimmed", "  charmander ", "charmander"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Term(tt.q))
		})
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("", "anything"), "inactive term matches everything")
	assert.True(t, Matches(Term("pi"), "unrelated field"), "gated term matches everything")
	assert.True(t, Matches("pika", "Pikachu", "electric"))
	assert.True(t, Matches("electric", "Pikachu", "Electric mouse"))
	assert.False(t, Matches("xyz", "Pikachu", "electric"))
}
