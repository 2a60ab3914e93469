package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("demo123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "demo123"))
	assert.False(t, VerifyPassword(hash, "demo1234"))
	assert.False(t, VerifyPassword("", ""))
}

func TestCostOrDefault(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, costOrDefault(bcrypt.MinCost))
	assert.Equal(t, bcrypt.DefaultCost, costOrDefault(0))
	assert.Equal(t, bcrypt.DefaultCost, costOrDefault(bcrypt.MaxCost+1))
}
