// Package client picks the backend once, at construction, and layers the
// session bookkeeping and upload polling on top of it.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/kv"
	"github.com/iliyamo/renttrack/internal/mockapi"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/remote"
	"github.com/iliyamo/renttrack/internal/session"
)

// Polling defaults: twelve attempts two seconds apart.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultPollAttempts = 12
)

// Options selects and configures the backend.
type Options struct {
	UseMock bool

	// HTTP backend.
	BaseURL    string
	HTTPClient *http.Client

	// Simulation backend; KV and Store inside are filled in from the
	// fields below when empty.
	Mock mockapi.Options

	// KV holds the session and, for the simulation, the settings.
	KV kv.Store

	PollInterval time.Duration
	PollAttempts int
}

// Client is an api.API with session helpers.  The embedded adapter is
// fixed for the client's lifetime.
type Client struct {
	api.API
	session  *session.Session
	interval time.Duration
	attempts int
	mock     *mockapi.Facade
}

// New builds the adapter named by opts.UseMock.
func New(opts Options) (*Client, error) {
	store := opts.KV
	if store == nil {
		store = kv.NewMemory()
	}
	c := &Client{
		session:  session.New(store),
		interval: opts.PollInterval,
		attempts: opts.PollAttempts,
	}
	if c.interval <= 0 {
		c.interval = DefaultPollInterval
	}
	if c.attempts <= 0 {
		c.attempts = DefaultPollAttempts
	}

	if opts.UseMock {
		mo := opts.Mock
		if mo.KV == nil {
			mo.KV = store
		}
		f, err := mockapi.New(mo)
		if err != nil {
			return nil, err
		}
		c.mock = f
		c.API = f
		return c, nil
	}
	if opts.BaseURL == "" {
		return nil, errors.New("client: base URL required when the mock is disabled")
	}
	c.API = remote.New(opts.BaseURL, opts.HTTPClient, c.session)
	return c, nil
}

// Mode names the selected backend: "mock" or "http".
func (c *Client) Mode() string {
	if c.mock != nil {
		return "mock"
	}
	return "http"
}

// Session exposes the persisted auth state.
func (c *Client) Session() *session.Session { return c.session }

// Close stops the simulation's background jobs.
func (c *Client) Close() error {
	if c.mock != nil {
		return c.mock.Close()
	}
	return nil
}

// SignIn logs in and persists the token and user.
func (c *Client) SignIn(ctx context.Context, email, password string) (model.AuthResult, error) {
	res, err := c.Login(ctx, email, password)
	if err != nil {
		return model.AuthResult{}, err
	}
	if err := c.session.SaveAuth(ctx, res); err != nil {
		return model.AuthResult{}, err
	}
	return res, nil
}

// SignOut forgets the persisted token and user.
func (c *Client) SignOut(ctx context.Context) error {
	return c.session.Clear(ctx)
}

// AwaitUpload polls an upload until it leaves processing.  A failed upload
// returns ErrUploadFailed; still processing after the last attempt returns
// ErrTimeout.  The last snapshot is returned in both cases.
func (c *Client) AwaitUpload(ctx context.Context, id string) (model.Upload, error) {
	var last model.Upload
	for attempt := 1; attempt <= c.attempts; attempt++ {
		u, err := c.GetUploadParsed(ctx, id)
		if err != nil {
			return last, err
		}
		last = u
		switch u.Status {
		case model.UploadCompleted:
			return u, nil
		case model.UploadFailed:
			return u, fmt.Errorf("upload %q: %w", id, api.ErrUploadFailed)
		}
		if attempt == c.attempts {
			break
		}
		t := time.NewTimer(c.interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return last, ctx.Err()
		case <-t.C:
		}
	}
	return last, fmt.Errorf("upload %q still processing after %d attempts: %w", id, c.attempts, api.ErrTimeout)
}
