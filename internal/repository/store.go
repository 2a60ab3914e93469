package repository

import "github.com/iliyamo/renttrack/internal/model"

// Store owns one collection per entity type.  It is constructed explicitly
// and passed to its consumers; tests call Reset between cases instead of
// relying on package-level state.
type Store struct {
	Users      *Collection[model.User]
	Properties *Collection[model.Property]
	Tenants    *Collection[model.Tenant]
	Payments   *Collection[model.Payment]
	Activities *Collection[model.Activity]
	Uploads    *Collection[model.Upload]
}

// New returns a store with empty collections.
func New() *Store {
	return &Store{
		Users:      NewCollection[model.User]("user"),
		Properties: NewCollection[model.Property]("property"),
		Tenants:    NewCollection[model.Tenant]("tenant"),
		Payments:   NewCollection[model.Payment]("payment"),
		Activities: NewCollection[model.Activity]("activity"),
		Uploads:    NewCollection[model.Upload]("upload"),
	}
}

// NewSeeded returns a store loaded with the demo data set.
func NewSeeded() *Store {
	s := New()
	s.Reset()
	return s
}

// Reset restores the demo data set and drops every upload.
func (s *Store) Reset() {
	seed := Seed()
	s.Users.replace(seed.Users)
	s.Properties.replace(seed.Properties)
	s.Tenants.replace(seed.Tenants)
	s.Payments.replace(seed.Payments)
	s.Activities.replace(seed.Activities)
	s.Uploads.replace(nil)
}

// Clear empties every collection.
func (s *Store) Clear() {
	s.Users.replace(nil)
	s.Properties.replace(nil)
	s.Tenants.replace(nil)
	s.Payments.replace(nil)
	s.Activities.replace(nil)
	s.Uploads.replace(nil)
}

// ResolveTenant fills the tenant's property name from the property record.
// An unknown property resolves to an empty name.
func (s *Store) ResolveTenant(t model.Tenant) model.Tenant {
	t.PropertyName = ""
	if t.PropertyID == "" {
		return t
	}
	if p, err := s.Properties.Get(t.PropertyID); err == nil {
		t.PropertyName = p.Title
	}
	return t
}

// ResolvePayment fills the payment's tenant name from the tenant record.
func (s *Store) ResolvePayment(p model.Payment) model.Payment {
	p.TenantName = ""
	if t, err := s.Tenants.Get(p.TenantID); err == nil {
		p.TenantName = t.Name
	}
	return p
}
