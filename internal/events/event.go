// Package events carries domain events from the API facade to RabbitMQ and
// back out into a log file.
package events

import (
	"time"

	"github.com/iliyamo/renttrack/internal/utils"
)

// Type names a domain event.  It doubles as the routing label in metrics.
type Type string

const (
	TenantAdded      Type = "tenant.added"
	PropertyAdded    Type = "property.added"
	PaymentReceived  Type = "payment.received"
	DocumentUploaded Type = "document.uploaded"
)

// Event is published after a successful mutation.  It contains enough
// information for downstream consumers to log or notify without querying
// the store.
type Event struct {
	ID         string  `json:"id"`
	Type       Type    `json:"type"`
	SubjectID  string  `json:"subject_id"`
	Message    string  `json:"message"`
	Amount     float64 `json:"amount,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

// New stamps an event with a fresh id and the given time.
func New(t Type, subjectID, message string, at time.Time) Event {
	return Event{
		ID:         utils.NewID("evt"),
		Type:       t,
		SubjectID:  subjectID,
		Message:    message,
		OccurredAt: at.UTC().Format(time.RFC3339),
	}
}
