package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNewSessionToken(t *testing.T) {
	first := NewSessionToken()
	second := NewSessionToken()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
