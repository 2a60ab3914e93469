package mockapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/events"
	"github.com/iliyamo/renttrack/internal/model"
)

func TestUploadCompletesExactlyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.UploadFile(ctx, api.FileUpload{Name: "lease.pdf", Type: "application/pdf", Data: []byte("%PDF-1.7")})
	require.NoError(t, err)

	u, err := f.GetUploadParsed(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.UploadProcessing, u.Status)
	assert.Nil(t, u.ParsedJSON)
	assert.Equal(t, int64(8), u.FileSize)

	require.Eventually(t, func() bool {
		u, err := f.GetUploadParsed(ctx, id)
		return err == nil && u.Status == model.UploadCompleted
	}, time.Second, 2*time.Millisecond)

	done, err := f.GetUploadParsed(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, done.ParsedJSON)
	assert.Equal(t, id, done.ParsedJSON.UploadID)
	assert.Equal(t, "Alexander Thompson", done.ParsedJSON.Name.Value)
	for name, field := range done.ParsedJSON.Fields() {
		assert.NotEmpty(t, field.Value, name)
		assert.True(t, field.Confidence >= 0 && field.Confidence <= 1, name)
	}

	time.Sleep(30 * time.Millisecond)
	again, err := f.GetUploadParsed(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, done, again, "completed uploads never change again")
	assert.False(t, f.Jobs().IsPending(id))

	evs := f.events.Events()
	require.Len(t, evs, 1)
	assert.Equal(t, events.DocumentUploaded, evs[0].Type)
	assert.Equal(t, id, evs[0].SubjectID)
}

func TestUploadSnapshotsAreCopies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, err := f.UploadFile(ctx, api.FileUpload{Name: "id.png"})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		u, _ := f.GetUploadParsed(ctx, id)
		return u.Status == model.UploadCompleted
	}, time.Second, 2*time.Millisecond)

	u, err := f.GetUploadParsed(ctx, id)
	require.NoError(t, err)
	u.ParsedJSON.Name.Value = "tampered"

	fresh, err := f.GetUploadParsed(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Alexander Thompson", fresh.ParsedJSON.Name.Value)
}

func TestUploadDetectsContentType(t *testing.T) {
	f := newFixture(t)
	id, err := f.UploadFile(context.Background(), api.FileUpload{Name: "scan", Data: []byte("%PDF-1.4 body")})
	require.NoError(t, err)
	u, err := f.Store().Uploads.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", u.FileType)
}

func TestGetUploadUnknown(t *testing.T) {
	f := newFixture(t)
	_, err := f.GetUploadParsed(context.Background(), "mock-upload-missing")
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestDeleteUploadCancelsJob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.UploadFile(ctx, api.FileUpload{Name: "lease.pdf"})
	require.NoError(t, err)
	require.NoError(t, f.DeleteUpload(ctx, id))
	assert.False(t, f.Jobs().IsPending(id))

	time.Sleep(30 * time.Millisecond)
	_, err = f.GetUploadParsed(ctx, id)
	assert.ErrorIs(t, err, api.ErrNotFound, "a cancelled job must not resurrect the record")

	assert.ErrorIs(t, f.DeleteUpload(ctx, id), api.ErrNotFound)
}

func TestUploadAfterShutdown(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Close())

	_, err := f.UploadFile(context.Background(), api.FileUpload{Name: "late.pdf"})
	assert.ErrorIs(t, err, api.ErrBackendUnavailable)
	assert.Zero(t, f.Store().Uploads.Len())
}

func TestReprocessFailedOCR(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n, err := f.ReprocessFailedOCR(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = f.Store().Uploads.Insert(model.Upload{ID: "up-failed", Filename: "blurry.jpg", Status: model.UploadFailed})
	require.NoError(t, err)

	n, err = f.ReprocessFailedOCR(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Eventually(t, func() bool {
		u, err := f.GetUploadParsed(ctx, "up-failed")
		return err == nil && u.Status == model.UploadCompleted
	}, time.Second, 2*time.Millisecond)
}
