package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/kv"
	"github.com/iliyamo/renttrack/internal/latency"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/session"
)

// ComputeStats folds the dashboard figures out of the given collections.
func ComputeStats(tenants int, payments []model.Payment) model.DashboardStats {
	stats := model.DashboardStats{TotalTenants: tenants, NextDueDate: model.NoDueDate}
	next := ""
	for _, p := range payments {
		switch p.Status {
		case model.PaymentOverdue:
			stats.Overdue++
		case model.PaymentPaid:
			stats.TotalRevenue += p.Amount
		case model.PaymentDue:
			// YYYY-MM-DD sorts lexically
			if p.DueDate != "" && (next == "" || p.DueDate < next) {
				next = p.DueDate
			}
		}
	}
	if next != "" {
		stats.NextDueDate = next
	}
	return stats
}

// DashboardStats recomputes the dashboard figures on every call.
func (f *Facade) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	if err := f.wait(ctx, latency.OpStats); err != nil {
		return model.DashboardStats{}, err
	}
	return ComputeStats(f.store.Tenants.Len(), f.store.Payments.List()), nil
}

// RecentActivity returns the activity feed.
func (f *Facade) RecentActivity(ctx context.Context) ([]model.Activity, error) {
	if err := f.wait(ctx, latency.OpActivity); err != nil {
		return nil, err
	}
	return f.store.Activities.List(), nil
}

// ListUsers returns the user directory.
func (f *Facade) ListUsers(ctx context.Context) ([]model.User, error) {
	if err := f.wait(ctx, latency.OpUsers); err != nil {
		return nil, err
	}
	return f.store.Users.List(), nil
}

// ExportTenantsCSV renders the tenant list as CSV.
func (f *Facade) ExportTenantsCSV(ctx context.Context) (api.Export, error) {
	if err := f.wait(ctx, latency.OpExport); err != nil {
		return api.Export{}, err
	}
	return api.Export{
		Filename:    api.TenantsCSVName,
		ContentType: api.CSVContentType,
		Data:        api.EncodeTenantsCSV(f.tenants()),
	}, nil
}

// ExportPaymentsCSV renders the payment list as CSV.
func (f *Facade) ExportPaymentsCSV(ctx context.Context) (api.Export, error) {
	if err := f.wait(ctx, latency.OpExport); err != nil {
		return api.Export{}, err
	}
	return api.Export{
		Filename:    api.PaymentsCSVName,
		ContentType: api.CSVContentType,
		Data:        api.EncodePaymentsCSV(f.payments()),
	}, nil
}

// GetSettings reads the persisted settings, falling back to the defaults
// when nothing has been saved.
func (f *Facade) GetSettings(ctx context.Context) (model.Settings, error) {
	if err := f.wait(ctx, latency.OpSettings); err != nil {
		return model.Settings{}, err
	}
	raw, err := f.kv.Get(ctx, session.SettingsKey)
	if errors.Is(err, kv.ErrMissing) {
		return model.Settings{OCRAccuracy: model.DefaultOCRAccuracy}, nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("%w: %w", api.ErrBackendUnavailable, err)
	}
	var s model.Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return model.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// UpdateSettings validates and persists s.
func (f *Facade) UpdateSettings(ctx context.Context, s model.Settings) (model.Settings, error) {
	if err := f.wait(ctx, latency.OpUpdateSettings); err != nil {
		return model.Settings{}, err
	}
	if math.IsNaN(s.OCRAccuracy) || s.OCRAccuracy < 0 || s.OCRAccuracy > 1 {
		return model.Settings{}, invalid("ocrAccuracy must be between 0 and 1")
	}
	b, err := json.Marshal(s)
	if err != nil {
		return model.Settings{}, err
	}
	if err := f.kv.Set(ctx, session.SettingsKey, string(b)); err != nil {
		return model.Settings{}, fmt.Errorf("%w: %w", api.ErrBackendUnavailable, err)
	}
	return s, nil
}
