package trainercode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"exact 12 digits", "123456789012", "123456789012", nil},
		{"QR payload with prefix", "https://x.dev/trainer?id=00123456789012", "123456789012", nil},
		{"noise between digits", "12-34 56.78(90)12", "123456789012", nil},
		{"more than 12 digits keeps the suffix", "99123456789012", "123456789012", nil},
		{"too short", "12345678901", "", ErrInvalidFormat},
		{"no digits at all", "pikachu", "", ErrInvalidFormat},
		{"empty", "", "", ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, Length)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"123456789012", "qr:99123456789012", "00-00-00-00-00-12"}

	for _, raw := range inputs {
		once, err := Normalize(raw)
		require.NoError(t, err)

		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("123456789012"))
	assert.False(t, IsValid("12345678901"))
	assert.False(t, IsValid("1234567890123"))
	assert.False(t, IsValid("12345678901a"))
}
