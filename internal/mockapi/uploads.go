package mockapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/events"
	"github.com/iliyamo/renttrack/internal/jobs"
	"github.com/iliyamo/renttrack/internal/latency"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/utils"
)

// UploadFile stores the document as processing and arms its OCR job.  It
// returns as soon as the record exists.
func (f *Facade) UploadFile(ctx context.Context, file api.FileUpload) (string, error) {
	if err := f.wait(ctx, latency.OpUpload); err != nil {
		return "", err
	}
	size := file.Size
	if size == 0 {
		size = int64(len(file.Data))
	}
	fileType := file.Type
	if fileType == "" && len(file.Data) > 0 {
		fileType = http.DetectContentType(file.Data)
	}

	u := model.Upload{
		ID:         utils.NewID("mock-upload"),
		Filename:   file.Name,
		FileType:   fileType,
		FileSize:   size,
		UploadedAt: f.now().UTC(),
		Status:     model.UploadProcessing,
	}
	if _, err := f.store.Uploads.Insert(u); err != nil {
		return "", err
	}
	if _, ok := f.jobs.Schedule(u.ID, jobs.CompleteUpload(f.store, u.ID)); !ok {
		f.store.Uploads.Delete(u.ID)
		return "", fmt.Errorf("%w: document processing is shut down", api.ErrBackendUnavailable)
	}

	ev := events.New(events.DocumentUploaded, u.ID, fmt.Sprintf("Document %s uploaded", u.Filename), f.now())
	f.publish(ctx, ev)
	return u.ID, nil
}

// GetUploadParsed returns the current snapshot of an upload.
func (f *Facade) GetUploadParsed(ctx context.Context, id string) (model.Upload, error) {
	if err := f.wait(ctx, latency.OpUploadParsed); err != nil {
		return model.Upload{}, err
	}
	u, err := f.store.Uploads.Get(id)
	if err != nil {
		return model.Upload{}, notFound(err)
	}
	return u, nil
}

// DeleteUpload removes the record and disarms its job.
func (f *Facade) DeleteUpload(ctx context.Context, id string) error {
	if err := f.wait(ctx, latency.OpDeleteUpload); err != nil {
		return err
	}
	existed := f.store.Uploads.Delete(id)
	f.jobs.Cancel(id)
	if !existed {
		return fmt.Errorf("%w: upload %q", api.ErrNotFound, id)
	}
	return nil
}

// ReprocessFailedOCR moves every failed upload back to processing and
// re-arms its job.  The simulation never fails a job, so this normally
// returns 0.
func (f *Facade) ReprocessFailedOCR(ctx context.Context) (int, error) {
	if err := f.wait(ctx, latency.OpReprocessOCR); err != nil {
		return 0, err
	}
	failed := f.store.Uploads.Find(func(u model.Upload) bool { return u.Status == model.UploadFailed })
	n := 0
	for _, u := range failed {
		_, err := f.store.Uploads.Update(u.ID, func(cur *model.Upload) error {
			if cur.Status != model.UploadFailed {
				return errSkip
			}
			cur.Status = model.UploadProcessing
			cur.ParsedJSON = nil
			return nil
		})
		if err != nil {
			continue
		}
		if _, ok := f.jobs.Schedule(u.ID, jobs.CompleteUpload(f.store, u.ID)); ok {
			n++
		}
	}
	return n, nil
}
