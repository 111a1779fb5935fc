package pdf

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// InvoiceData is a pre-formatted monthly invoice table. Columns after the
// first are right-aligned.
type InvoiceData struct {
	Brand       string
	Title       string
	Period      string
	GeneratedOn string

	Header []string
	Rows   [][]string

	TotalLabel string
	Total      string
	Footer     string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, invoice InvoiceData) (io.Reader, error) {
	if len(invoice.Header) == 0 {
		return nil, errors.New("invoice table has no columns")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, invoice.Brand, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(10,
		text.NewCol(12, invoice.Title, props.Text{
			Size:  14,
			Align: align.Center,
		}),
	)
	m.AddRow(12,
		col.New(6).Add(
			text.New("Invoice period: "+invoice.Period, props.Text{Size: 10}),
			text.New("Generated on: "+invoice.GeneratedOn, props.Text{Size: 9, Top: 5}),
		),
		col.New(6),
	)

	widths := columnWidths(len(invoice.Header))

	headerCols := make([]core.Col, 0, len(invoice.Header))
	for i, title := range invoice.Header {
		headerCols = append(headerCols, text.NewCol(widths[i], title, cellProps(i, fontstyle.Bold)))
	}
	m.AddRow(10, headerCols...)

	for _, row := range invoice.Rows {
		cols := make([]core.Col, 0, len(invoice.Header))
		for i := range invoice.Header {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			cols = append(cols, text.NewCol(widths[i], value, cellProps(i, fontstyle.Normal)))
		}
		m.AddRow(8, cols...)
	}

	last := len(widths) - 1
	m.AddRow(10,
		text.NewCol(12-widths[last], invoice.TotalLabel, props.Text{Size: 10, Style: fontstyle.Bold, Top: 2}),
		text.NewCol(widths[last], invoice.Total, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 2}),
	)

	if invoice.Footer != "" {
		m.AddRow(15,
			text.NewCol(12, invoice.Footer, props.Text{Size: 8, Style: fontstyle.Italic, Top: 8}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

func cellProps(column int, style fontstyle.Type) props.Text {
	p := props.Text{Size: 9, Style: style, Top: 2}
	if column > 0 {
		p.Align = align.Right
	}
	return p
}

// columnWidths spreads the 12-unit grid, giving the first column the remainder.
func columnWidths(n int) []int {
	widths := make([]int, n)
	if n == 0 {
		return widths
	}
	if n == 1 {
		widths[0] = 12
		return widths
	}
	rest := 12 / (n + 1)
	for i := 1; i < n; i++ {
		widths[i] = rest
	}
	widths[0] = 12 - rest*(n-1)
	return widths
}
