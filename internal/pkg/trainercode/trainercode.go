// Package trainercode normalizes scanned or typed trainer codes to their
// canonical 12-digit form.
package trainercode

import (
	"errors"
	"strings"
)

// Length is the canonical trainer code length.
const Length = 12

var ErrInvalidFormat = errors.New("trainer code must contain 12 digits")

// Normalize strips every non-digit rune from raw and keeps the last 12
// digits, tolerating prefixes and noise in QR payloads. It fails when fewer
// than 12 digits remain.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) < Length {
		return "", ErrInvalidFormat
	}

	return digits[len(digits)-Length:], nil
}

// IsValid reports whether raw already is a canonical code.
func IsValid(raw string) bool {
	normalized, err := Normalize(raw)

	return err == nil && normalized == raw
}
