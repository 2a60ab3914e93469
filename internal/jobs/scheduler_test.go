package jobs

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/metrics"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/repository"
)

func TestScheduleFiresOnce(t *testing.T) {
	s := NewScheduler(5*time.Millisecond, 10*time.Millisecond, zap.NewNop())
	var runs int32

	d, ok := s.Schedule("a", func() string { atomic.AddInt32(&runs, 1); return "done" })
	require.True(t, ok)
	assert.GreaterOrEqual(t, d, 5*time.Millisecond)
	assert.Less(t, d, 10*time.Millisecond)

	_, ok = s.Schedule("a", func() string { atomic.AddInt32(&runs, 1); return "done" })
	assert.False(t, ok, "second job for the same key must be refused while pending")

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) == 1 }, time.Second, 2*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
	assert.Equal(t, 0, s.Pending())
}

func TestCancelPreventsRun(t *testing.T) {
	s := NewScheduler(30*time.Millisecond, 30*time.Millisecond, nil)
	var runs int32
	_, ok := s.Schedule("a", func() string { atomic.AddInt32(&runs, 1); return "done" })
	require.True(t, ok)
	assert.True(t, s.IsPending("a"))

	assert.True(t, s.Cancel("a"))
	assert.False(t, s.Cancel("a"))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&runs))
}

func TestStopCancelsAndRefuses(t *testing.T) {
	s := NewScheduler(time.Hour, time.Hour, nil)
	s.Schedule("a", func() string { return "done" })
	s.Schedule("b", func() string { return "done" })

	assert.Equal(t, 2, s.Stop())
	assert.Equal(t, 0, s.Pending())
	_, ok := s.Schedule("c", func() string { return "done" })
	assert.False(t, ok)
}

func TestInvertedWindowUsesMin(t *testing.T) {
	s := NewScheduler(7*time.Millisecond, time.Millisecond, nil)
	min, max := s.Window()
	assert.Equal(t, min, max)
	assert.Equal(t, 7*time.Millisecond, s.draw())
}

func TestCompleteUpload(t *testing.T) {
	store := repository.New()
	_, err := store.Uploads.Insert(model.Upload{ID: "up-1", Status: model.UploadProcessing})
	require.NoError(t, err)

	task := CompleteUpload(store, "up-1")
	assert.Equal(t, metrics.OutcomeCompleted, task())

	u, err := store.Uploads.Get("up-1")
	require.NoError(t, err)
	assert.Equal(t, model.UploadCompleted, u.Status)
	require.NotNil(t, u.ParsedJSON)
	assert.Equal(t, "up-1", u.ParsedJSON.UploadID)
	assert.Equal(t, "Alexander Thompson", u.ParsedJSON.Name.Value)

	// a second firing must not touch the completed record
	assert.Equal(t, metrics.OutcomeSkipped, task())
}

func TestCompleteUploadDeletedRecord(t *testing.T) {
	store := repository.New()
	_, _ = store.Uploads.Insert(model.Upload{ID: "up-1", Status: model.UploadProcessing})
	store.Uploads.Delete("up-1")

	assert.Equal(t, metrics.OutcomeSkipped, CompleteUpload(store, "up-1")())
	assert.False(t, store.Uploads.Exists("up-1"))
}
