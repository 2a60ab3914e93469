// Package latency suspends callers for a configurable, per-operation time
// window to make the in-memory API feel like a network backend.
package latency

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// Op names a facade operation for delay lookup.
type Op string

const (
	OpLogin          Op = "login"
	OpForgotPassword Op = "forgot_password"
	OpCurrentUser    Op = "current_user"
	OpUpload         Op = "upload"
	OpUploadParsed   Op = "upload_parsed"
	OpDeleteUpload   Op = "delete_upload"
	OpReprocessOCR   Op = "reprocess_ocr"
	OpTenants        Op = "tenants"
	OpTenant         Op = "tenant"
	OpCreateTenant   Op = "create_tenant"
	OpLedger         Op = "ledger"
	OpProperties     Op = "properties"
	OpProperty       Op = "property"
	OpCreateProperty Op = "create_property"
	OpUpdateProperty Op = "update_property"
	OpPayments       Op = "payments"
	OpMarkPaid       Op = "mark_paid"
	OpManualPayment  Op = "manual_payment"
	OpSweepOverdue   Op = "sweep_overdue"
	OpStats          Op = "stats"
	OpActivity       Op = "activity"
	OpUsers          Op = "users"
	OpSettings       Op = "settings"
	OpUpdateSettings Op = "update_settings"
	OpExport         Op = "export"
)

// DefaultDelay applies to operations missing from the delay table.
const DefaultDelay = 500 * time.Millisecond

// DefaultDelays mirrors the response times of the dashboard's mock API:
// logins are slow, quick reads sit around 250-450ms, writes 500-800ms.
var DefaultDelays = map[Op]time.Duration{
	OpLogin:          700 * time.Millisecond,
	OpForgotPassword: 400 * time.Millisecond,
	OpCurrentUser:    250 * time.Millisecond,
	OpUpload:         800 * time.Millisecond,
	OpUploadParsed:   350 * time.Millisecond,
	OpDeleteUpload:   300 * time.Millisecond,
	OpReprocessOCR:   1200 * time.Millisecond,
	OpTenants:        450 * time.Millisecond,
	OpTenant:         300 * time.Millisecond,
	OpCreateTenant:   700 * time.Millisecond,
	OpLedger:         400 * time.Millisecond,
	OpProperties:     400 * time.Millisecond,
	OpProperty:       300 * time.Millisecond,
	OpCreateProperty: 600 * time.Millisecond,
	OpUpdateProperty: 500 * time.Millisecond,
	OpPayments:       450 * time.Millisecond,
	OpMarkPaid:       500 * time.Millisecond,
	OpManualPayment:  600 * time.Millisecond,
	OpSweepOverdue:   500 * time.Millisecond,
	OpStats:          300 * time.Millisecond,
	OpActivity:       250 * time.Millisecond,
	OpUsers:          350 * time.Millisecond,
	OpSettings:       200 * time.Millisecond,
	OpUpdateSettings: 250 * time.Millisecond,
	OpExport:         300 * time.Millisecond,
}

// Simulator computes and applies artificial delays.  Scale multiplies
// every base delay (0 turns the simulator off); Jitter spreads each delay
// uniformly by ±Jitter of its scaled value.  A Simulator is safe for
// concurrent use and never injects failures.
type Simulator struct {
	mu     sync.RWMutex // guards delays
	delays map[Op]time.Duration
	scale  float64
	jitter float64
}

// New returns a simulator over DefaultDelays.  Negative values are clamped
// to zero and jitter is capped at 1.
func New(scale, jitter float64) *Simulator {
	if scale < 0 {
		scale = 0
	}
	if jitter < 0 {
		jitter = 0
	}
	if jitter > 1 {
		jitter = 1
	}
	delays := make(map[Op]time.Duration, len(DefaultDelays))
	for k, v := range DefaultDelays {
		delays[k] = v
	}
	return &Simulator{delays: delays, scale: scale, jitter: jitter}
}

// Disabled returns a simulator that never waits.
func Disabled() *Simulator { return New(0, 0) }

// WithDelay overrides the base delay of one operation and returns s.
func (s *Simulator) WithDelay(op Op, d time.Duration) *Simulator {
	s.mu.Lock()
	s.delays[op] = d
	s.mu.Unlock()
	return s
}

// Base returns the unscaled delay configured for op.
func (s *Simulator) Base(op Op) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.delays[op]; ok {
		return d
	}
	return DefaultDelay
}

// Delay draws the delay for one call of op.
func (s *Simulator) Delay(op Op) time.Duration {
	if s.scale == 0 {
		return 0
	}
	d := float64(s.Base(op)) * s.scale
	if s.jitter > 0 {
		d += d * s.jitter * (2*rand.Float64() - 1)
	}
	if d < 0 {
		return 0
	}
	return time.Duration(d)
}

// Wait suspends the caller for one draw of op's delay.  Other goroutines
// are unaffected.  It returns ctx.Err() when the context ends first.
func (s *Simulator) Wait(ctx context.Context, op Op) error {
	d := s.Delay(op)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
