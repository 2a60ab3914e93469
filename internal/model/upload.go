package model

import "time"

// UploadStatus tracks an OCR job.  The simulation only ever moves
// processing -> completed; failed exists for a real backend.
type UploadStatus string

const (
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadFailed     UploadStatus = "failed"
)

// OCRField is one extracted value with its recognition confidence in [0,1].
type OCRField struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// ParsedOCRData holds the fields extracted from a tenant document.  The
// JSON names match what the onboarding form expects.
type ParsedOCRData struct {
	Name       OCRField `json:"name"`
	Phone      OCRField `json:"phone"`
	Email      OCRField `json:"email"`
	GovtID     OCRField `json:"govtId"`
	Address    OCRField `json:"address"`
	RentAmount OCRField `json:"rent_amount"`
	LeaseStart OCRField `json:"lease_start"`
	LeaseEnd   OCRField `json:"lease_end"`
	UploadID   string   `json:"_uploadId,omitempty"`
}

// Fields returns the extracted fields keyed by their JSON name.
func (d ParsedOCRData) Fields() map[string]OCRField {
	return map[string]OCRField{
		"name":        d.Name,
		"phone":       d.Phone,
		"email":       d.Email,
		"govtId":      d.GovtID,
		"address":     d.Address,
		"rent_amount": d.RentAmount,
		"lease_start": d.LeaseStart,
		"lease_end":   d.LeaseEnd,
	}
}

// Upload is a document submitted for OCR.  ParsedJSON is set exactly once,
// when the job completes.
type Upload struct {
	ID         string         `json:"id"`
	Filename   string         `json:"filename"`
	FileType   string         `json:"fileType"`
	FileSize   int64          `json:"fileSize"`
	UploadedAt time.Time      `json:"uploadedAt"`
	Status     UploadStatus   `json:"status"`
	ParsedJSON *ParsedOCRData `json:"parsedJson,omitempty"`
	PreviewURL string         `json:"previewUrl,omitempty"`
}

func (u Upload) GetID() string { return u.ID }

// Clone returns a deep copy of u.
func (u Upload) Clone() Upload {
	if u.ParsedJSON != nil {
		d := *u.ParsedJSON
		u.ParsedJSON = &d
	}
	return u
}
