package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexNumber decodes from a JSON number, a numeric string, an empty
// string or null.  Form inputs arrive as strings; the store keeps numbers.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseNumber(s)
		if err != nil {
			return err
		}
		*n = FlexNumber(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil || !finite(v) {
		return fmt.Errorf("%w: %q is not a number", ErrValidation, b)
	}
	*n = FlexNumber(v)
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Finite reports whether n is neither NaN nor infinite.  Values built in
// Go rather than decoded from JSON can still carry either.
func (n FlexNumber) Finite() bool { return finite(float64(n)) }

// Float returns n as a float64.
func (n FlexNumber) Float() float64 { return float64(n) }

// Int truncates n.
func (n FlexNumber) Int() int { return int(n) }

// ParseNumber coerces a form value: blank is 0, thousands separators and a
// leading currency sign are ignored.  NaN, infinities and values out of
// float64 range are rejected.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrValidation, s)
	}
	return v, nil
}

// TenantInput is the body of CreateTenant.  Missing fields take their zero
// value; Status defaults to active.
type TenantInput struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	GovtID     string     `json:"govtId"`
	Address    string     `json:"address"`
	PropertyID string     `json:"propertyId"`
	RentAmount FlexNumber `json:"rentAmount"`
	Deposit    FlexNumber `json:"deposit"`
	LeaseStart string     `json:"leaseStart"`
	LeaseEnd   string     `json:"leaseEnd"`
	Status     string     `json:"status"`
}

// PropertyInput is the body of CreateProperty.  Available defaults to true
// when absent.
type PropertyInput struct {
	Title       string     `json:"title"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Price       FlexNumber `json:"price"`
	BHK         FlexNumber `json:"bhk"`
	Sqft        FlexNumber `json:"sqft"`
	Amenities   []string   `json:"amenities"`
	Available   *bool      `json:"available"`
	Images      []string   `json:"images"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
}

// PropertyPatch is the body of UpdateProperty.  Nil fields are left as
// they are.
type PropertyPatch struct {
	Title       *string     `json:"title,omitempty"`
	Address     *string     `json:"address,omitempty"`
	City        *string     `json:"city,omitempty"`
	Price       *FlexNumber `json:"price,omitempty"`
	BHK         *FlexNumber `json:"bhk,omitempty"`
	Sqft        *FlexNumber `json:"sqft,omitempty"`
	Amenities   []string    `json:"amenities,omitempty"`
	Available   *bool       `json:"available,omitempty"`
	Images      []string    `json:"images,omitempty"`
	Description *string     `json:"description,omitempty"`
	Type        *string     `json:"type,omitempty"`
}

// MarkPaidInput is the body of MarkPaymentPaid.  An empty PaidDate means
// today.
type MarkPaidInput struct {
	Method   string `json:"method"`
	PaidDate string `json:"paidDate"`
}

// ManualPaymentInput is the body of RecordManualPayment.  Date is
// YYYY-MM-DD and becomes both the due and the paid date.
type ManualPaymentInput struct {
	TenantID   string     `json:"tenantId"`
	Amount     FlexNumber `json:"amount"`
	Date       string     `json:"date"`
	Method     string     `json:"method"`
	ReceiptURL string     `json:"receiptUrl,omitempty"`
}

// SweepInput is the body of SweepOverduePayments.  An empty AsOf means
// today.
type SweepInput struct {
	AsOf string `json:"asOf"`
}

// CountResult wraps operations that return a count.
type CountResult struct {
	Count int `json:"count"`
}

// UploadResult is returned by UploadFile.
type UploadResult struct {
	ID string `json:"id"`
}

// LoginInput is the body of Login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordInput is the body of ForgotPassword.
type ForgotPasswordInput struct {
	Email string `json:"email"`
}

// FileUpload is a document handed to UploadFile.  Size is taken from Data
// when zero.
type FileUpload struct {
	Name string
	Type string
	Size int64
	Data []byte
}

// Export is a downloadable file.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}
