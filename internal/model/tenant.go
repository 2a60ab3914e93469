package model

import "time"

// TenantStatus is the closed set of tenancy states.
type TenantStatus string

const (
	TenantActive   TenantStatus = "active"
	TenantPending  TenantStatus = "pending"
	TenantInactive TenantStatus = "inactive"
)

// Valid reports whether s is a known tenant status.
func (s TenantStatus) Valid() bool {
	return s == TenantActive || s == TenantPending || s == TenantInactive
}

// Tenant is an occupant bound to one property.  Only PropertyID is stored;
// PropertyName is filled from the property record whenever a tenant is read,
// so renaming a property never leaves stale names behind.
//
// LeaseStart and LeaseEnd are calendar dates (YYYY-MM-DD).  LeaseStart
// before LeaseEnd is expected but not enforced.
type Tenant struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	GovtID       string       `json:"govtId"`
	Address      string       `json:"address"`
	Avatar       string       `json:"avatar,omitempty"`
	PropertyID   string       `json:"propertyId"`
	PropertyName string       `json:"propertyName"`
	RentAmount   float64      `json:"rentAmount"`
	Deposit      float64      `json:"deposit"`
	LeaseStart   string       `json:"leaseStart"`
	LeaseEnd     string       `json:"leaseEnd"`
	Status       TenantStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func (t Tenant) GetID() string { return t.ID }

// Clone returns a copy of t.  Tenant holds no reference types.
func (t Tenant) Clone() Tenant { return t }
