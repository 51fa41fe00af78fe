// Package password wraps bcrypt hashing for stored credentials. bcrypt
// embeds a fresh random salt in every hash and compares in constant time,
// so callers only ever handle the opaque hash string.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from the plaintext. It fails only if
// bcrypt itself fails (entropy exhaustion, oversized input).
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored hash. A mismatch is a
// normal false result, never an error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
