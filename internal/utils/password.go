package utils

import "golang.org/x/crypto/bcrypt"

// passwordHashCost is the bcrypt work factor applied to new password hashes.
// Raising it only affects hashes created afterwards; stored hashes keep
// verifying at the cost they were generated with.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword derives the bcrypt hash stored in place of a user's plaintext
// password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
