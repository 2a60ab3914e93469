// Package mockapi implements api.API entirely in memory.  Every operation
// first waits on the latency simulator, then reads or mutates the record
// store; uploads finish later on the job scheduler.  The facade never logs
// or retries; errors are returned wrapped around the api sentinels.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/events"
	"github.com/iliyamo/renttrack/internal/jobs"
	"github.com/iliyamo/renttrack/internal/kv"
	"github.com/iliyamo/renttrack/internal/latency"
	"github.com/iliyamo/renttrack/internal/repository"
	"github.com/iliyamo/renttrack/internal/session"
	"github.com/iliyamo/renttrack/internal/utils"
)

// DefaultPassword is the shared demo password.
const DefaultPassword = "demo123"

// Default OCR completion window.
const (
	DefaultOCRMin = 3 * time.Second
	DefaultOCRMax = 6 * time.Second
)

// Options wires a Facade.  Nil fields get working defaults: a seeded store,
// unscaled delays, a 3-6s OCR window, prefix tokens, the demo password, an
// in-memory KV store and no event publishing.
type Options struct {
	Store     *repository.Store
	Latency   *latency.Simulator
	Jobs      *jobs.Scheduler
	Tokens    utils.Tokenizer
	KV        kv.Store
	Publisher events.Publisher
	Logger    *zap.Logger // handed to the default scheduler only

	// PasswordHash is the bcrypt hash of the shared password.  When empty,
	// Password (or DefaultPassword) is hashed with BcryptCost.
	PasswordHash string
	Password     string
	BcryptCost   int

	Now func() time.Time
}

// Facade is the simulation adapter.
type Facade struct {
	store     *repository.Store
	latency   *latency.Simulator
	jobs      *jobs.Scheduler
	tokens    utils.Tokenizer
	kv        kv.Store
	session   *session.Session
	publisher events.Publisher
	hash      string
	now       func() time.Time
}

var _ api.API = (*Facade)(nil)

// New builds a facade from opts.
func New(opts Options) (*Facade, error) {
	f := &Facade{
		store:     opts.Store,
		latency:   opts.Latency,
		jobs:      opts.Jobs,
		tokens:    opts.Tokens,
		kv:        opts.KV,
		publisher: opts.Publisher,
		hash:      opts.PasswordHash,
		now:       opts.Now,
	}
	if f.store == nil {
		f.store = repository.NewSeeded()
	}
	if f.latency == nil {
		f.latency = latency.New(1, 0)
	}
	if f.jobs == nil {
		f.jobs = jobs.NewScheduler(DefaultOCRMin, DefaultOCRMax, opts.Logger)
	}
	if f.tokens == nil {
		f.tokens = utils.PrefixTokens{}
	}
	if f.kv == nil {
		f.kv = kv.NewMemory()
	}
	if f.publisher == nil {
		f.publisher = events.Nop{}
	}
	if f.now == nil {
		f.now = time.Now
	}
	if f.hash == "" {
		pw := opts.Password
		if pw == "" {
			pw = DefaultPassword
		}
		h, err := utils.HashPassword(pw, opts.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("mockapi: hash password: %w", err)
		}
		f.hash = h
	}
	f.session = session.New(f.kv)
	return f, nil
}

// Store returns the record store the facade owns.
func (f *Facade) Store() *repository.Store { return f.store }

// Jobs returns the OCR scheduler.
func (f *Facade) Jobs() *jobs.Scheduler { return f.jobs }

// Close cancels pending OCR jobs.
func (f *Facade) Close() error {
	f.jobs.Stop()
	return nil
}

func (f *Facade) wait(ctx context.Context, op latency.Op) error {
	return f.latency.Wait(ctx, op)
}

func (f *Facade) publish(ctx context.Context, ev events.Event) {
	// Publishing is best effort; the mutation has already happened.
	_ = f.publisher.Publish(context.WithoutCancel(ctx), ev)
}

func (f *Facade) today() string {
	return f.now().Format(dateLayout)
}

const dateLayout = "2006-01-02"

// notFound re-wraps a store miss so it matches api.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %w", api.ErrNotFound, err)
	}
	return err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", api.ErrValidation, fmt.Sprintf(format, args...))
}

// Upper bounds for money and for whole-number counts.  Sums of bounded
// amounts stay finite.
const (
	maxAmount = 1e12
	maxCount  = math.MaxInt32
)

// checkAmount accepts a finite amount in [0, maxAmount].
func checkAmount(name string, v api.FlexNumber) error {
	if !v.Finite() || v < 0 {
		return invalid("%s must be a non-negative number", name)
	}
	if v > maxAmount {
		return invalid("%s must not exceed %.0f", name, float64(maxAmount))
	}
	return nil
}

// checkCount accepts a finite count in [0, maxCount] before it is
// truncated to int.
func checkCount(name string, v api.FlexNumber) error {
	if !v.Finite() || v < 0 {
		return invalid("%s must be a non-negative number", name)
	}
	if v > maxCount {
		return invalid("%s must not exceed %d", name, maxCount)
	}
	return nil
}
