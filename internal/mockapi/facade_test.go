package mockapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/events"
	"github.com/iliyamo/renttrack/internal/jobs"
	"github.com/iliyamo/renttrack/internal/kv"
	"github.com/iliyamo/renttrack/internal/latency"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/repository"
	"github.com/iliyamo/renttrack/internal/session"
)

type fixture struct {
	*Facade
	kv     *kv.Memory
	events *events.Recorder
}

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := kv.NewMemory()
	rec := &events.Recorder{}
	f, err := New(Options{
		Latency:    latency.Disabled(),
		Jobs:       jobs.NewScheduler(5*time.Millisecond, 15*time.Millisecond, nil),
		KV:         store,
		Publisher:  rec,
		BcryptCost: bcrypt.MinCost,
		Now:        func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return fixture{Facade: f, kv: store, events: rec}
}

func TestLoginRoleIsDeterministic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		email string
		role  model.Role
		name  string
	}{
		{"demo@renttrack.local", model.SessionAdmin, "Demo Admin"},
		{"landlord@renttrack.local", model.SessionLandlord, "Demo Landlord"},
		{"Tenant@RentTrack.local", model.SessionTenant, "Demo Tenant"},
		{"someone@example.com", model.SessionAdmin, "Demo Admin"},
		{"", model.SessionAdmin, "Demo Admin"},
	}
	for _, tc := range cases {
		for i := 0; i < 3; i++ {
			res, err := f.Login(ctx, tc.email, DefaultPassword)
			require.NoError(t, err, tc.email)
			assert.Equal(t, tc.role, res.User.Role, tc.email)
			assert.Equal(t, tc.name, res.User.Name, tc.email)
			assert.NotEmpty(t, res.Token)
			require.NotNil(t, res.User.LastLogin)
		}
	}
}

func TestLoginRejectsOtherPasswords(t *testing.T) {
	f := newFixture(t)
	for _, pw := range []string{"", "demo", "demo1234", "DEMO123", " demo123"} {
		res, err := f.Login(context.Background(), "demo@renttrack.local", pw)
		assert.ErrorIs(t, err, api.ErrInvalidCredentials, pw)
		assert.Equal(t, model.AuthResult{}, res, pw)
	}
}

func TestCurrentUserReadsStoredToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.CurrentUser(ctx)
	assert.ErrorIs(t, err, api.ErrNotAuthenticated)

	res, err := f.Login(ctx, "landlord@renttrack.local", DefaultPassword)
	require.NoError(t, err)
	require.NoError(t, session.New(f.kv).SaveAuth(ctx, res))

	u, err := f.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.SessionLandlord, u.Role)
	assert.Equal(t, LandlordEmail, u.Email)

	// Any token that is not tagged landlord or tenant resolves to admin.
	require.NoError(t, f.kv.Set(ctx, session.TokenKey, "mystery"))
	u, err = f.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.SessionAdmin, u.Role)

	require.NoError(t, session.New(f.kv).Clear(ctx))
	_, err = f.CurrentUser(ctx)
	assert.ErrorIs(t, err, api.ErrNotAuthenticated)
}

func TestOperationsHonourContext(t *testing.T) {
	f, err := New(Options{Latency: latency.New(1, 0), BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.ListTenants(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = f.Login(ctx, "demo@renttrack.local", DefaultPassword)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultsWithoutOptions(t *testing.T) {
	f, err := New(Options{Latency: latency.Disabled(), BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	defer f.Close()

	lo, hi := f.Jobs().Window()
	assert.Equal(t, DefaultOCRMin, lo)
	assert.Equal(t, DefaultOCRMax, hi)
	assert.Equal(t, len(repository.Seed().Tenants), f.Store().Tenants.Len())
}
