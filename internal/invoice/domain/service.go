package domain

import (
	"context"
	"errors"
	"strings"

	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// ParseFormat accepts a format name or file extension, case-insensitively.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), ".")) {
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Document is a rendered file ready to be downloaded.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

type Service interface {
	// Export renders the monthly invoice as invoice_<year>_<MM>.<ext>.
	Export(ctx context.Context, format Format, result billingdomain.BillingResult) (Document, error)
	// ExportEntries renders entry views as milk_entries_<YYYYMMDD>.csv, dated today.
	ExportEntries(ctx context.Context, views []deliverydomain.EntryView) (Document, error)
}

var ErrUnsupportedFormat = errors.New("unsupported_format")
