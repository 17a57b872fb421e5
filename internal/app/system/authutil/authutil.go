// Package authutil wraps credential hashing so the cost factor and the
// comparison semantics live in one place.
package authutil

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches the salt rounds the service has always used; raising
// it only affects newly hashed passwords.
const DefaultCost = 10

// HashPassword produces a salted bcrypt hash of the plaintext. A cost of 0
// (or anything below bcrypt's minimum) falls back to DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
