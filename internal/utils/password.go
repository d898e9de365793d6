package utils

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Password length bounds. The upper bound is bcrypt's input limit in bytes.
const (
	PasswordMinLen      = 8
	passwordMaxLenBytes = 72
)

// ErrWeakPassword is returned by HashPassword when the plaintext is shorter
// than [PasswordMinLen] characters or longer than bcrypt's 72-byte limit.
var ErrWeakPassword = errors.New("password must be 8-72 characters long")

// HashPassword hashes plain with bcrypt using a freshly generated salt.
// The output is non-deterministic; use [VerifyPassword] to check a candidate
// against a stored hash.
func HashPassword(plain string) (string, error) {
	// The minimum counts characters, the maximum counts bytes (bcrypt limit).
	if utf8.RuneCountInString(plain) < PasswordMinLen || len(plain) > passwordMaxLenBytes {
		return "", ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// The comparison is case-sensitive and performs no trimming.
func VerifyPassword(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
