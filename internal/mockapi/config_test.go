package mockapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/renttrack/internal/config"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/utils"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Config{
		TokenScheme:  utils.SchemeJWT,
		JWTSecret:    "s3cret",
		AccessTTLMin: 5,
		DemoPassword: "hunter2",
		BcryptCost:   bcrypt.MinCost,
		OCRMinDelay:  time.Second,
		OCRMaxDelay:  2 * time.Second,
	}
	opts, err := OptionsFromConfig(cfg, nil)
	require.NoError(t, err)
	lo, hi := opts.Jobs.Window()
	assert.Equal(t, time.Second, lo)
	assert.Equal(t, 2*time.Second, hi)
	assert.IsType(t, &utils.JWTTokens{}, opts.Tokens)

	f, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	_, err = f.Login(context.Background(), "tenant@renttrack.local", DefaultPassword)
	assert.Error(t, err)

	res, err := f.UserForToken("tenant-token-forged")
	assert.Error(t, err)
	assert.Equal(t, model.User{}, res)
}

func TestOptionsFromConfigRejectsBadScheme(t *testing.T) {
	_, err := OptionsFromConfig(config.Config{TokenScheme: utils.SchemeJWT}, nil)
	assert.Error(t, err)
	_, err = OptionsFromConfig(config.Config{TokenScheme: "opaque"}, nil)
	assert.Error(t, err)
}
