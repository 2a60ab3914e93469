package repository

import (
	"time"

	"github.com/iliyamo/renttrack/internal/model"
)

// DataSet is a full set of records used to (re)initialize a store.
type DataSet struct {
	Users      []model.User
	Properties []model.Property
	Tenants    []model.Tenant
	Payments   []model.Payment
	Activities []model.Activity
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(s string) *time.Time {
	t := ts(s)
	return &t
}

func avatar(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}

// DemoAdmin is the seeded administrator account.
var DemoAdmin = model.User{
	ID:     "admin",
	Name:   "Demo Admin",
	Email:  "demo@renttrack.local",
	Role:   model.RoleAdmin,
	Avatar: avatar("admin"),
}

// Seed returns a fresh copy of the demo data set.
func Seed() DataSet {
	admin := DemoAdmin.Clone()
	admin.LastLogin = tsPtr("2024-12-09T08:00:00Z")

	return DataSet{
		Users: []model.User{
			admin,
			{ID: "user-2", Name: "Sarah Johnson", Email: "sarah@renttrack.local", Role: model.RoleManager, Avatar: avatar("sarah"), LastLogin: tsPtr("2024-12-08T14:30:00Z")},
			{ID: "user-3", Name: "Mike Chen", Email: "mike@renttrack.local", Role: model.RoleViewer, Avatar: avatar("mike"), LastLogin: tsPtr("2024-12-07T09:15:00Z")},
		},
		Properties: []model.Property{
			{
				ID: "prop-1", Title: "Sunset View Apartment", Address: "123 Ocean Drive", City: "Miami",
				Price: 2500, BHK: 2, Sqft: 1200, Amenities: []string{"pool", "gym", "parking", "security"}, Available: true,
				Images:      []string{"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=400"},
				Description: "Beautiful 2BHK apartment with ocean views", Type: model.PropertyApartment,
				CreatedAt: ts("2023-11-01T00:00:00Z"),
			},
			{
				ID: "prop-2", Title: "Downtown Loft", Address: "456 Main Street", City: "New York",
				Price: 3200, BHK: 1, Sqft: 850, Amenities: []string{"gym", "doorman", "laundry"}, Available: true,
				Images:      []string{"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=400"},
				Description: "Modern loft in the heart of downtown", Type: model.PropertyStudio,
				CreatedAt: ts("2023-11-02T00:00:00Z"),
			},
			{
				ID: "prop-3", Title: "Garden Villa", Address: "789 Park Lane", City: "Los Angeles",
				Price: 4500, BHK: 4, Sqft: 2800, Amenities: []string{"pool", "garden", "parking", "security", "gym"}, Available: false,
				Images:      []string{"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400"},
				Description: "Spacious villa with private garden", Type: model.PropertyVilla,
				CreatedAt: ts("2023-11-03T00:00:00Z"),
			},
			{
				ID: "prop-4", Title: "Cozy Studio", Address: "321 Elm Street", City: "Chicago",
				Price: 1800, BHK: 1, Sqft: 550, Amenities: []string{"laundry", "parking"}, Available: true,
				Images:      []string{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400"},
				Description: "Perfect starter apartment", Type: model.PropertyStudio,
				CreatedAt: ts("2023-11-04T00:00:00Z"),
			},
			{
				ID: "prop-5", Title: "Family Home", Address: "555 Oak Avenue", City: "Seattle",
				Price: 3800, BHK: 3, Sqft: 2200, Amenities: []string{"garden", "parking", "basement"}, Available: true,
				Images:      []string{"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=400"},
				Description: "Beautiful family home with backyard", Type: model.PropertyHouse,
				CreatedAt: ts("2023-11-05T00:00:00Z"),
			},
		},
		Tenants: []model.Tenant{
			{
				ID: "tenant-1", Name: "John Smith", Email: "john.smith@email.com", Phone: "+1 (555) 123-4567",
				GovtID: "DL-123456789", Address: "123 Ocean Drive, Apt 4B, Miami, FL 33139", Avatar: avatar("john"),
				PropertyID: "prop-1", RentAmount: 2500, Deposit: 5000, LeaseStart: "2024-01-01", LeaseEnd: "2024-12-31",
				Status: model.TenantActive, CreatedAt: ts("2023-12-15T10:00:00Z"),
			},
			{
				ID: "tenant-2", Name: "Emily Davis", Email: "emily.davis@email.com", Phone: "+1 (555) 987-6543",
				GovtID: "SSN-XXX-XX-1234", Address: "456 Main Street, Unit 12A, New York, NY 10001", Avatar: avatar("emily"),
				PropertyID: "prop-2", RentAmount: 3200, Deposit: 6400, LeaseStart: "2024-03-01", LeaseEnd: "2025-02-28",
				Status: model.TenantActive, CreatedAt: ts("2024-02-20T14:30:00Z"),
			},
			{
				ID: "tenant-3", Name: "Robert Wilson", Email: "robert.wilson@email.com", Phone: "+1 (555) 456-7890",
				GovtID: "PASSPORT-A12345678", Address: "789 Park Lane, Los Angeles, CA 90001", Avatar: avatar("robert"),
				PropertyID: "prop-3", RentAmount: 4500, Deposit: 9000, LeaseStart: "2024-06-01", LeaseEnd: "2025-05-31",
				Status: model.TenantActive, CreatedAt: ts("2024-05-10T09:15:00Z"),
			},
			{
				ID: "tenant-4", Name: "Lisa Martinez", Email: "lisa.martinez@email.com", Phone: "+1 (555) 321-0987",
				GovtID: "DL-987654321", Address: "321 Elm Street, Apt 3C, Chicago, IL 60601", Avatar: avatar("lisa"),
				PropertyID: "prop-4", RentAmount: 1800, Deposit: 3600, LeaseStart: "2024-08-01", LeaseEnd: "2025-07-31",
				Status: model.TenantPending, CreatedAt: ts("2024-07-25T16:45:00Z"),
			},
		},
		Payments: []model.Payment{
			{ID: "pay-1", TenantID: "tenant-1", PropertyID: "prop-1", Month: "December 2024", DueDate: "2024-12-01", Amount: 2500, Status: model.PaymentPaid, PaidDate: "2024-11-28", Method: "bank_transfer"},
			{ID: "pay-2", TenantID: "tenant-1", PropertyID: "prop-1", Month: "January 2025", DueDate: "2025-01-01", Amount: 2500, Status: model.PaymentDue},
			{ID: "pay-3", TenantID: "tenant-2", PropertyID: "prop-2", Month: "December 2024", DueDate: "2024-12-01", Amount: 3200, Status: model.PaymentOverdue},
			{ID: "pay-4", TenantID: "tenant-2", PropertyID: "prop-2", Month: "November 2024", DueDate: "2024-11-01", Amount: 3200, Status: model.PaymentPaid, PaidDate: "2024-10-30", Method: "credit_card"},
			{ID: "pay-5", TenantID: "tenant-3", PropertyID: "prop-3", Month: "December 2024", DueDate: "2024-12-01", Amount: 4500, Status: model.PaymentPaid, PaidDate: "2024-12-01", Method: "check"},
			{ID: "pay-6", TenantID: "tenant-4", PropertyID: "prop-4", Month: "December 2024", DueDate: "2024-12-01", Amount: 1800, Status: model.PaymentDue},
		},
		Activities: []model.Activity{
			{ID: "act-1", Type: model.ActivityPaymentReceived, Message: "Payment of $2,500 received from John Smith", Timestamp: ts("2024-12-08T14:30:00Z")},
			{ID: "act-2", Type: model.ActivityTenantAdded, Message: "New tenant Lisa Martinez added to Cozy Studio", Timestamp: ts("2024-12-07T10:15:00Z")},
			{ID: "act-3", Type: model.ActivityDocumentUploaded, Message: "Lease agreement uploaded for Emily Davis", Timestamp: ts("2024-12-06T16:45:00Z")},
			{ID: "act-4", Type: model.ActivityPropertyAdded, Message: `New property "Lakeside Condo" added to listings`, Timestamp: ts("2024-12-05T09:00:00Z")},
			{ID: "act-5", Type: model.ActivityLeaseRenewed, Message: "Lease renewed for Robert Wilson until May 2025", Timestamp: ts("2024-12-04T11:30:00Z")},
		},
	}
}

// ExampleOCR is the extraction result every simulated job produces.
func ExampleOCR() model.ParsedOCRData {
	return model.ParsedOCRData{
		Name:       model.OCRField{Value: "Alexander Thompson", Confidence: 0.95},
		Phone:      model.OCRField{Value: "+1 (555) 789-0123", Confidence: 0.88},
		Email:      model.OCRField{Value: "alex.thompson@email.com", Confidence: 0.92},
		GovtID:     model.OCRField{Value: "DL-456789123", Confidence: 0.75},
		Address:    model.OCRField{Value: "742 Evergreen Terrace, Springfield, IL 62701", Confidence: 0.82},
		RentAmount: model.OCRField{Value: "2200", Confidence: 0.90},
		LeaseStart: model.OCRField{Value: "2025-01-01", Confidence: 0.85},
		LeaseEnd:   model.OCRField{Value: "2025-12-31", Confidence: 0.85},
	}
}
