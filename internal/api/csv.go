package api

import (
	"strconv"
	"strings"

	"github.com/iliyamo/renttrack/internal/model"
)

// CSVContentType is the MIME type of every export.
const CSVContentType = "text/csv"

// Export file names.
const (
	TenantsCSVName  = "tenants.csv"
	PaymentsCSVName = "payments.csv"
)

var (
	tenantsHeader  = []string{"Name", "Email", "Phone", "Property", "Rent", "Status"}
	paymentsHeader = []string{"Tenant", "Month", "Amount", "Due Date", "Status", "Paid Date"}
)

// quote always wraps s in double quotes and doubles embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeRow(b *strings.Builder, fields []string) {
	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')
}

// EncodeTenantsCSV renders tenants with their resolved property names.
func EncodeTenantsCSV(tenants []model.Tenant) []byte {
	var b strings.Builder
	writeRow(&b, tenantsHeader)
	for _, t := range tenants {
		writeRow(&b, []string{
			quote(t.Name), quote(t.Email), quote(t.Phone), quote(t.PropertyName),
			number(t.RentAmount), quote(string(t.Status)),
		})
	}
	return []byte(b.String())
}

// EncodePaymentsCSV renders payments with their resolved tenant names.
func EncodePaymentsCSV(payments []model.Payment) []byte {
	var b strings.Builder
	writeRow(&b, paymentsHeader)
	for _, p := range payments {
		writeRow(&b, []string{
			quote(p.TenantName), quote(p.Month), number(p.Amount),
			quote(p.DueDate), quote(string(p.Status)), quote(p.PaidDate),
		})
	}
	return []byte(b.String())
}
