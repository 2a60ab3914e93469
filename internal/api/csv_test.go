package api

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/renttrack/internal/model"
)

func TestEncodeTenantsCSVQuotesEveryString(t *testing.T) {
	out := EncodeTenantsCSV([]model.Tenant{
		{Name: `Jo "JJ" Smith`, Email: "jo@x.io", Phone: "1, 2", PropertyName: "Loft", RentAmount: 1250.5, Status: model.TenantActive},
	})
	assert.Equal(t,
		"Name,Email,Phone,Property,Rent,Status\n"+
			`"Jo ""JJ"" Smith","jo@x.io","1, 2","Loft",1250.5,"active"`+"\n",
		string(out))

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, `Jo "JJ" Smith`, rows[1][0])
	assert.Equal(t, "1, 2", rows[1][2])
}

func TestEncodePaymentsCSVEmptyPaidDate(t *testing.T) {
	out := EncodePaymentsCSV([]model.Payment{
		{TenantName: "Ann", Month: "May 2025", Amount: 900, DueDate: "2025-05-01", Status: model.PaymentDue},
	})
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, paymentsHeader, rows[0])
	assert.Equal(t, []string{"Ann", "May 2025", "900", "2025-05-01", "due", ""}, rows[1])
}

func TestEncodeEmptyCollections(t *testing.T) {
	assert.Equal(t, "Name,Email,Phone,Property,Rent,Status\n", string(EncodeTenantsCSV(nil)))
	assert.Equal(t, "Tenant,Month,Amount,Due Date,Status,Paid Date\n", string(EncodePaymentsCSV(nil)))
}
