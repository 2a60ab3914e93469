package model

// NoDueDate is reported as NextDueDate when no payment is due.
const NoDueDate = "N/A"

// DashboardStats aggregates the collections for the dashboard cards.
type DashboardStats struct {
	TotalTenants int     `json:"totalTenants"`
	Overdue      int     `json:"overdue"`
	NextDueDate  string  `json:"nextDueDate"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// DefaultOCRAccuracy is used until settings have been saved once.
const DefaultOCRAccuracy = 0.8

// Settings is the single persisted preferences record.
type Settings struct {
	OCRAccuracy float64 `json:"ocrAccuracy"`
}
