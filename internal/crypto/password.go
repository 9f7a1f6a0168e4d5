package crypto

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt (salted, one-way).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// The comparison inside bcrypt is constant-time.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
