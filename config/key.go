package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
)

// GenerateRandomKey returns the JWT signing key. JWT_SECRET wins when set so
// tokens survive restarts; otherwise a fresh random key is generated.
func GenerateRandomKey() string {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return key
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate JWT key: %v", err)
	}
	return hex.EncodeToString(b)
}
