// Package claimqr renders claim codes as QR PNGs for stamp verification.
package claimqr

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 220

var ErrEmptyClaimCode = errors.New("claim code is empty")

// Render encodes claimCode into a PNG of size pixels per side. A size of 0
// falls back to the default used by the album view.
func Render(claimCode string, size int) ([]byte, error) {
	if claimCode == "" {
		return nil, ErrEmptyClaimCode
	}

	if size <= 0 {
		size = defaultSize
	}

	code, err := qrcode.New(claimCode, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qrcode.New -> %w", err)
	}

	png, err := code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("code.PNG -> %w", err)
	}

	return png, nil
}
