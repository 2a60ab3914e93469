package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/renttrack/internal/model"
)

func TestPrefixTokensRoundTrip(t *testing.T) {
	tk := PrefixTokens{}
	for _, role := range []model.Role{model.SessionAdmin, model.SessionLandlord, model.SessionTenant} {
		token, claims, err := tk.Issue(role)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(token, strings.ToLower(string(role))+"-token-"))

		parsed, err := tk.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, claims, parsed)
	}
}

func TestPrefixTokensDefaultToAdmin(t *testing.T) {
	c, err := PrefixTokens{}.Parse("whatever")
	require.NoError(t, err)
	assert.Equal(t, model.SessionAdmin, c.Role)

	_, err = PrefixTokens{}.Parse("  ")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTTokens(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tk := &JWTTokens{Secret: "s3cret", TTL: time.Minute, Now: func() time.Time { return now }}

	token, claims, err := tk.Issue(model.SessionLandlord)
	require.NoError(t, err)

	parsed, err := tk.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, claims, parsed)

	other := &JWTTokens{Secret: "other", Now: tk.Now}
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	now = now.Add(2 * time.Minute)
	_, err = tk.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenizer(t *testing.T) {
	tk, err := NewTokenizer("", "", 0)
	require.NoError(t, err)
	assert.IsType(t, PrefixTokens{}, tk)

	_, err = NewTokenizer("jwt", "", time.Hour)
	assert.Error(t, err)

	tk, err = NewTokenizer("JWT", "k", time.Hour)
	require.NoError(t, err)
	assert.IsType(t, &JWTTokens{}, tk)

	_, err = NewTokenizer("paseto", "k", time.Hour)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	h, err := HashPassword("demo123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(h, "demo123"))
	assert.False(t, VerifyPassword(h, "demo124"))
}

func TestNewID(t *testing.T) {
	a, b := NewID("tenant"), NewID("tenant")
	assert.NotEqual(t, a, b)
	assert.Len(t, a, len("tenant-")+10)
}
