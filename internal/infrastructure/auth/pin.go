package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// PinHasher verifies operator PINs against stored SHA-256 hex digests.
// The digest scheme matches the seeded operator records; the verify
// contract is one-way and constant-time.
type PinHasher struct{}

// NewPinHasher creates a PinHasher.
func NewPinHasher() *PinHasher {
	return &PinHasher{}
}

// Hash returns the hex-encoded SHA-256 digest of a PIN.
func (h *PinHasher) Hash(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// Verify compares a PIN against a stored digest in constant time.
func (h *PinHasher) Verify(pin, storedHash string) bool {
	hashed := h.Hash(pin)
	expected := strings.ToLower(strings.TrimSpace(storedHash))
	return subtle.ConstantTimeCompare([]byte(hashed), []byte(expected)) == 1
}
