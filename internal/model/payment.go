package model

// PaymentStatus is the closed set of payment states.  Payments start as
// due, become paid when settled, and become overdue only when seeded that
// way or when an explicit overdue sweep runs.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentDue     PaymentStatus = "due"
	PaymentOverdue PaymentStatus = "overdue"
)

// Payment is one rent charge for one tenant and month.  TenantName is
// resolved from the tenant record on read and never stored.
//
// Fields:
//
//	Month      – billing month label, e.g. "December 2024".
//	DueDate    – YYYY-MM-DD.
//	PaidDate   – YYYY-MM-DD, set when status is paid.
//	Method     – payment channel (cash, check, bank_transfer, ...).
//	ReceiptURL – optional receipt link.
type Payment struct {
	ID         string        `json:"id"`
	TenantID   string        `json:"tenantId"`
	TenantName string        `json:"tenantName"`
	PropertyID string        `json:"propertyId"`
	Month      string        `json:"month"`
	DueDate    string        `json:"dueDate"`
	Amount     float64       `json:"amount"`
	Status     PaymentStatus `json:"status"`
	PaidDate   string        `json:"paidDate,omitempty"`
	Method     string        `json:"method,omitempty"`
	ReceiptURL string        `json:"receiptUrl,omitempty"`
}

func (p Payment) GetID() string { return p.ID }

// Clone returns a copy of p.
func (p Payment) Clone() Payment { return p }
