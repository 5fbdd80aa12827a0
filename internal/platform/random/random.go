package random

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// Code returns an opaque uppercase hex string built from n random bytes.
// Codes are not sequential and carry no structure, so they cannot be guessed
// from one another; at 16 bytes the collision probability is negligible.
func Code(n int) (string, error) {
	byt := make([]byte, n)

	if _, err := rand.Read(byt); err != nil {
		return "", err
	}

	return strings.ToUpper(hex.EncodeToString(byt)), nil
}
