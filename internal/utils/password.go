package utils

import "golang.org/x/crypto/bcrypt"

// costOrDefault maps BCRYPT_COST values bcrypt would refuse to the default.
func costOrDefault(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// HashPassword hashes the shared demo password.  The facade calls it once
// at construction and keeps only the hash.
func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), costOrDefault(cost))
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a login attempt matches the stored hash.
// An empty hash never matches.
func VerifyPassword(hash, attempt string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(attempt)) == nil
}
