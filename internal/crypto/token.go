package crypto

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns n cryptographically random bytes as a hex string.
// Used for playback tokens: 32 bytes gives 256 bits of entropy, so
// collisions and enumeration are infeasible.
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
