package claimqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	png, err := Render("A1B2C3D4E5F6", 220)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic number.
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestRenderDefaultSize(t *testing.T) {
	png, err := Render("A1B2C3D4E5F6", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestRenderEmptyCode(t *testing.T) {
	_, err := Render("", 220)
	assert.ErrorIs(t, err, ErrEmptyClaimCode)
}
