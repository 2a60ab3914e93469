package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/renttrack/internal/kv"
	"github.com/iliyamo/renttrack/internal/model"
)

func TestSaveAndClear(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := New(store)

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	_, ok, err := s.User(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	auth := model.AuthResult{Token: "landlord-token-abc", User: model.User{ID: "landlord-abc", Name: "Demo Landlord", Role: model.SessionLandlord}}
	require.NoError(t, s.SaveAuth(ctx, auth))

	raw, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "landlord-token-abc", raw)

	u, ok, err := s.User(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, auth.User, u)

	require.NoError(t, s.Clear(ctx))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	_, err = store.Get(ctx, UserKey)
	assert.ErrorIs(t, err, kv.ErrMissing)
}

func TestCorruptUserBlob(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, UserKey, "{not json"))

	_, _, err := New(store).User(ctx)
	assert.ErrorContains(t, err, "decode user")
}
