// Package jobs emulates the backend's asynchronous document processing.
// Each upload gets one timer that fires once after a random delay; the
// timer is bound to the upload's lifetime and can be cancelled.
package jobs

import (
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/metrics"
)

// Task is the deferred work of a job.  It returns the outcome label that
// is logged and counted.
type Task func() string

type job struct {
	timer *time.Timer
	delay time.Duration
}

// Scheduler arms at most one pending job per key.
type Scheduler struct {
	min, max time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	pending map[string]*job
	stopped bool
	wg      sync.WaitGroup
}

// NewScheduler returns a scheduler drawing delays uniformly from
// [min, max).  max below min is treated as a fixed delay of min.
func NewScheduler(min, max time.Duration, log *zap.Logger) *Scheduler {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{min: min, max: max, log: log, pending: make(map[string]*job)}
}

// Window returns the delay bounds.
func (s *Scheduler) Window() (time.Duration, time.Duration) { return s.min, s.max }

func (s *Scheduler) draw() time.Duration {
	if s.max <= s.min {
		return s.min
	}
	return s.min + rand.N(s.max-s.min)
}

// Schedule arms task under key and returns the drawn delay.  It returns
// false when a job for key is already pending or the scheduler is stopped.
func (s *Scheduler) Schedule(key string, task Task) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return 0, false
	}
	if _, ok := s.pending[key]; ok {
		return 0, false
	}
	j := &job{delay: s.draw()}
	s.wg.Add(1)
	j.timer = time.AfterFunc(j.delay, func() { s.fire(key, j, task) })
	s.pending[key] = j
	metrics.OCRJobsPending.Inc()
	s.log.Debug("job scheduled", zap.String("key", key), zap.Duration("delay", j.delay))
	return j.delay, true
}

// fire runs task only if j is still the pending job for key, so a job that
// lost a race with Cancel never runs.
func (s *Scheduler) fire(key string, j *job, task Task) {
	defer s.wg.Done()
	s.mu.Lock()
	cur, ok := s.pending[key]
	if !ok || cur != j {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()
	metrics.OCRJobsPending.Dec()

	outcome := task()
	metrics.RecordOCRJob(outcome)
	s.log.Info("job finished", zap.String("key", key), zap.String("outcome", outcome), zap.Duration("delay", j.delay))
}

// Cancel disarms the pending job for key and reports whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	j, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	if j.timer.Stop() {
		s.wg.Done()
	}
	metrics.OCRJobsPending.Dec()
	metrics.RecordOCRJob(metrics.OutcomeCancelled)
	s.log.Info("job cancelled", zap.String("key", key))
	return true
}

// IsPending reports whether a job for key is armed.
func (s *Scheduler) IsPending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Pending returns the number of armed jobs.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop cancels every pending job, refuses new ones and waits for running
// tasks to return.  It returns the number of jobs cancelled.
func (s *Scheduler) Stop() int {
	s.mu.Lock()
	s.stopped = true
	keys := make([]string, 0, len(s.pending))
	for k := range s.pending {
		keys = append(keys, k)
	}
	s.mu.Unlock()

	n := 0
	for _, k := range keys {
		if s.Cancel(k) {
			n++
		}
	}
	s.wg.Wait()
	return n
}
