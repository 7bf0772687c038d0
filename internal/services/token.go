package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// generateToken returns length lowercase hex characters backed by length/2 random bytes.
func generateToken(length int) (string, error) {
	b := make([]byte, length/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
