package render

import (
	"github.com/shopspring/decimal"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
)

var EntriesHeader = []string{"Date", "Customer", "Quantity (L)", "Rate (INR/L)", "Amount (INR)"}

// RenderEntriesCSV writes one line per entry view, in the given order.
func RenderEntriesCSV(views []deliverydomain.EntryView) ([]byte, error) {
	records := make([][]string, 0, len(views)+1)
	records = append(records, EntriesHeader)
	for _, v := range views {
		qty := decimal.NewFromFloat(v.Quantity)
		rate := decimal.NewFromFloat(v.PricePerLtr)
		records = append(records, []string{
			v.EntryDate.String(),
			v.CustomerName,
			qty.String(),
			rate.StringFixed(2),
			qty.Mul(rate).StringFixed(2),
		})
	}
	return writeCSV(records)
}
