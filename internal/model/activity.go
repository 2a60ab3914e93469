package model

import "time"

// ActivityType classifies entries of the activity feed.
type ActivityType string

const (
	ActivityTenantAdded      ActivityType = "tenant_added"
	ActivityPaymentReceived  ActivityType = "payment_received"
	ActivityDocumentUploaded ActivityType = "document_uploaded"
	ActivityLeaseRenewed     ActivityType = "lease_renewed"
	ActivityPropertyAdded    ActivityType = "property_added"
)

// Activity is an append-only feed entry shown on the dashboard.
type Activity struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
	UserID    string       `json:"userId,omitempty"`
}

func (a Activity) GetID() string { return a.ID }

func (a Activity) Clone() Activity { return a }
