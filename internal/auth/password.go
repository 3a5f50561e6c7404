package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the work factor the accounts were created with.
// Raising it only affects newly hashed passwords; old hashes keep the cost
// embedded in them.
const DefaultBcryptCost = 10

// HashPassword produces a self-describing bcrypt hash (salt and cost
// embedded), suitable for storage and later comparison without persisting
// the salt separately. Minimum password length is enforced at the request
// boundary, not here.
func HashPassword(raw string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether raw matches the stored bcrypt hash.
// The comparison is deliberately slow and constant-time within bcrypt.
func VerifyPassword(raw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(raw)) == nil
}
