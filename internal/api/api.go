// Package api defines the operation surface shared by the in-memory
// simulation and the HTTP client, together with its request types, error
// taxonomy and CSV export encoding.
package api

import (
	"context"

	"github.com/iliyamo/renttrack/internal/model"
)

// API is implemented by every backend adapter.  Both implementations
// return errors that match the sentinels in this package with errors.Is.
type API interface {
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	CurrentUser(ctx context.Context) (model.User, error)

	UploadFile(ctx context.Context, file FileUpload) (string, error)
	GetUploadParsed(ctx context.Context, id string) (model.Upload, error)
	DeleteUpload(ctx context.Context, id string) error
	ReprocessFailedOCR(ctx context.Context) (int, error)

	ListTenants(ctx context.Context) ([]model.Tenant, error)
	GetTenant(ctx context.Context, id string) (model.Tenant, error)
	CreateTenant(ctx context.Context, in TenantInput) (model.Tenant, error)
	TenantLedger(ctx context.Context, tenantID string) ([]model.Payment, error)

	ListProperties(ctx context.Context) ([]model.Property, error)
	GetProperty(ctx context.Context, id string) (model.Property, error)
	CreateProperty(ctx context.Context, in PropertyInput) (model.Property, error)
	UpdateProperty(ctx context.Context, id string, patch PropertyPatch) (model.Property, error)

	ListPayments(ctx context.Context) ([]model.Payment, error)
	MarkPaymentPaid(ctx context.Context, id string, in MarkPaidInput) (model.Payment, error)
	RecordManualPayment(ctx context.Context, in ManualPaymentInput) (model.Payment, error)
	SweepOverduePayments(ctx context.Context, asOf string) (int, error)

	DashboardStats(ctx context.Context) (model.DashboardStats, error)
	RecentActivity(ctx context.Context) ([]model.Activity, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	ExportTenantsCSV(ctx context.Context) (Export, error)
	ExportPaymentsCSV(ctx context.Context) (Export, error)

	GetSettings(ctx context.Context) (model.Settings, error)
	UpdateSettings(ctx context.Context, s model.Settings) (model.Settings, error)
}
