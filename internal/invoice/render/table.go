package render

import (
	"github.com/shopspring/decimal"
	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
)

const GrandTotalLabel = "GRAND TOTAL"

// Header is the column order shared by every invoice format.
var Header = []string{
	"Customer Name",
	"Total Litres",
	"Rate per Litre (INR)",
	"Total Amount (INR)",
}

// Row holds one customer's figures, already rounded to 2 decimals.
type Row struct {
	Name        string
	TotalLitres decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

func (r Row) Cells() []string {
	return []string{
		r.Name,
		r.TotalLitres.StringFixed(2),
		r.Rate.StringFixed(2),
		r.Amount.StringFixed(2),
	}
}

// Table is the renderer-independent invoice content.
type Table struct {
	Period     string
	Rows       []Row
	GrandTotal decimal.Decimal
}

// Rows builds the invoice table for a billing result.
func Rows(result billingdomain.BillingResult) Table {
	table := Table{
		Period:     result.Period(),
		Rows:       make([]Row, 0, len(result.Customers)),
		GrandTotal: result.GrandTotal.Round(2),
	}
	for _, bill := range result.Customers {
		table.Rows = append(table.Rows, Row{
			Name:        bill.Name,
			TotalLitres: bill.TotalLitres.Round(2),
			Rate:        bill.PricePerLtr.Round(2),
			Amount:      bill.TotalAmount.Round(2),
		})
	}
	return table
}

// TotalCells is the closing row: label first, amount last, the rest blank.
func (t Table) TotalCells() []string {
	cells := make([]string, len(Header))
	cells[0] = GrandTotalLabel
	cells[len(cells)-1] = t.GrandTotal.StringFixed(2)
	return cells
}

// Records is the full table as text: header, customer rows, total row.
func (t Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+2)
	records = append(records, Header)
	for _, row := range t.Rows {
		records = append(records, row.Cells())
	}
	return append(records, t.TotalCells())
}
