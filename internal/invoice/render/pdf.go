package render

import (
	"context"
	"io"

	"github.com/smallbiznis/smartdairy/internal/providers/pdf"
)

// Options carries the document chrome around the table.
type Options struct {
	Brand       string
	GeneratedOn string
	AccentColor string
}

func RenderPDF(ctx context.Context, provider pdf.Provider, table Table, opts Options) ([]byte, error) {
	rows := make([][]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		rows = append(rows, r.Cells())
	}

	reader, err := provider.GenerateInvoice(ctx, pdf.InvoiceData{
		Brand:       opts.Brand,
		Title:       "Monthly Invoice",
		Period:      table.Period,
		GeneratedOn: opts.GeneratedOn,
		Header:      Header,
		Rows:        rows,
		TotalLabel:  GrandTotalLabel,
		Total:       table.GrandTotal.StringFixed(2),
		Footer:      "Thank you for your business. This is a computer-generated invoice.",
	})
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}
