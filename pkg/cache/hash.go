package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes the SHA-256 of data as a 64-character hex string. The full
// digest is kept so distinct matrices can never collide on a key.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
