package jobs

import (
	"errors"

	"github.com/iliyamo/renttrack/internal/metrics"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/repository"
)

var errNotProcessing = errors.New("upload is not processing")

// CompleteUpload returns the task that finishes OCR for one upload.  The
// task re-reads the record when it fires: a deleted upload, or one that has
// already left the processing state, is left alone.
func CompleteUpload(store *repository.Store, uploadID string) Task {
	return func() string {
		_, err := store.Uploads.Update(uploadID, func(u *model.Upload) error {
			if u.Status != model.UploadProcessing {
				return errNotProcessing
			}
			parsed := repository.ExampleOCR()
			parsed.UploadID = uploadID
			u.Status = model.UploadCompleted
			u.ParsedJSON = &parsed
			return nil
		})
		if err != nil {
			return metrics.OutcomeSkipped
		}
		return metrics.OutcomeCompleted
	}
}
