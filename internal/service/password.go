package service

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt digest of plaintext at the given cost.
// The salt is generated per call and embedded in the digest, so hashing
// the same plaintext twice yields different digests.
func HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the bcrypt digest.
// A malformed digest verifies false rather than surfacing an error, so
// callers can only ever report "wrong credentials".
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
