package mockapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/events"
	"github.com/iliyamo/renttrack/internal/latency"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/utils"
)

var errSkip = errors.New("record changed concurrently")

func avatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}

// ListTenants returns every tenant with its property name resolved.
func (f *Facade) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	if err := f.wait(ctx, latency.OpTenants); err != nil {
		return nil, err
	}
	return f.tenants(), nil
}

func (f *Facade) tenants() []model.Tenant {
	list := f.store.Tenants.List()
	for i := range list {
		list[i] = f.store.ResolveTenant(list[i])
	}
	return list
}

// GetTenant returns one tenant.
func (f *Facade) GetTenant(ctx context.Context, id string) (model.Tenant, error) {
	if err := f.wait(ctx, latency.OpTenant); err != nil {
		return model.Tenant{}, err
	}
	t, err := f.store.Tenants.Get(id)
	if err != nil {
		return model.Tenant{}, notFound(err)
	}
	return f.store.ResolveTenant(t), nil
}

// CreateTenant adds a tenant.  Missing fields stay zero, status defaults to
// active.  The property, when given, must exist.
func (f *Facade) CreateTenant(ctx context.Context, in api.TenantInput) (model.Tenant, error) {
	if err := f.wait(ctx, latency.OpCreateTenant); err != nil {
		return model.Tenant{}, err
	}
	status := model.TenantStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if status == "" {
		status = model.TenantActive
	}
	if !status.Valid() {
		return model.Tenant{}, invalid("unknown tenant status %q", in.Status)
	}
	if err := checkAmount("rentAmount", in.RentAmount); err != nil {
		return model.Tenant{}, err
	}
	if err := checkAmount("deposit", in.Deposit); err != nil {
		return model.Tenant{}, err
	}
	propertyID := strings.TrimSpace(in.PropertyID)
	if propertyID != "" && !f.store.Properties.Exists(propertyID) {
		return model.Tenant{}, invalid("unknown property %q", propertyID)
	}

	t := model.Tenant{
		ID:         utils.NewID("tenant"),
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		GovtID:     strings.TrimSpace(in.GovtID),
		Address:    strings.TrimSpace(in.Address),
		Avatar:     avatarURL(utils.ShortID()),
		PropertyID: propertyID,
		RentAmount: in.RentAmount.Float(),
		Deposit:    in.Deposit.Float(),
		LeaseStart: strings.TrimSpace(in.LeaseStart),
		LeaseEnd:   strings.TrimSpace(in.LeaseEnd),
		Status:     status,
		CreatedAt:  f.now().UTC(),
	}
	saved, err := f.store.Tenants.Insert(t)
	if err != nil {
		return model.Tenant{}, err
	}
	saved = f.store.ResolveTenant(saved)

	msg := fmt.Sprintf("New tenant %s added", saved.Name)
	if saved.PropertyName != "" {
		msg += " to " + saved.PropertyName
	}
	f.publish(ctx, events.New(events.TenantAdded, saved.ID, msg, f.now()))
	return saved, nil
}

// TenantLedger returns the payments of one tenant.
func (f *Facade) TenantLedger(ctx context.Context, tenantID string) ([]model.Payment, error) {
	if err := f.wait(ctx, latency.OpLedger); err != nil {
		return nil, err
	}
	if !f.store.Tenants.Exists(tenantID) {
		return nil, fmt.Errorf("%w: tenant %q", api.ErrNotFound, tenantID)
	}
	list := f.store.Payments.Find(func(p model.Payment) bool { return p.TenantID == tenantID })
	for i := range list {
		list[i] = f.store.ResolvePayment(list[i])
	}
	return list, nil
}
