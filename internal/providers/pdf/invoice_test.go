package pdf

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceProducesPDF(t *testing.T) {
	provider := New()

	reader, err := provider.GenerateInvoice(context.Background(), InvoiceData{
		Brand:       "SmartDairy",
		Title:       "Monthly Invoice",
		Period:      "October 2026",
		GeneratedOn: "2026-11-01 09:00",
		Header:      []string{"Customer Name", "Total Litres", "Rate per Litre (INR)", "Total Amount (INR)"},
		Rows: [][]string{
			{"A", "15.00", "50.00", "750.00"},
			{"B", "3.00", "40.00", "120.00"},
		},
		TotalLabel: "GRAND TOTAL",
		Total:      "870.00",
		Footer:     "Thank you for your business.",
	})
	require.NoError(t, err)

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestGenerateInvoiceRequiresColumns(t *testing.T) {
	_, err := New().GenerateInvoice(context.Background(), InvoiceData{})
	assert.Error(t, err)
}

func TestColumnWidthsFillGrid(t *testing.T) {
	for n := 1; n <= 6; n++ {
		sum := 0
		for _, w := range columnWidths(n) {
			assert.Positive(t, w)
			sum += w
		}
		assert.Equal(t, 12, sum, "n=%d", n)
	}
	assert.Equal(t, []int{6, 2, 2, 2}, columnWidths(4))
}
