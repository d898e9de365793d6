package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewSessionToken returns an opaque, cryptographically random token suitable
// for use as a session key. uuid.NewString draws from crypto/rand.
func NewSessionToken() string {
	return uuid.NewString()
}
