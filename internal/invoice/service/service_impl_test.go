package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
	"github.com/smallbiznis/smartdairy/internal/clock"
	"github.com/smallbiznis/smartdairy/internal/config"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
	"github.com/smallbiznis/smartdairy/internal/invoice/domain"
	"github.com/smallbiznis/smartdairy/internal/providers/pdf"
	"github.com/smallbiznis/smartdairy/pkg/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() domain.Service {
	return NewService(Params{
		Log:      zap.NewNop(),
		PDF:      pdf.New(),
		Settings: config.NewStaticSettings(config.DefaultSettings()),
		Clock:    clock.NewFakeClock(time.Date(2026, time.November, 3, 8, 30, 0, 0, time.UTC)),
	})
}

func result() billingdomain.BillingResult {
	return billingdomain.BillingResult{
		Year:  2026,
		Month: time.March,
		Customers: []billingdomain.CustomerBill{{
			CustomerID:  1,
			Name:        "A",
			PricePerLtr: decimal.NewFromInt(50),
			TotalLitres: decimal.NewFromInt(15),
			TotalAmount: decimal.NewFromInt(750),
		}},
		GrandTotal:     decimal.NewFromInt(750),
		TotalCustomers: 1,
	}
}

func TestExportNamesAndTypes(t *testing.T) {
	svc := newTestService()

	for _, tc := range []struct {
		format      domain.Format
		filename    string
		contentType string
		magic       []byte
	}{
		{domain.FormatPDF, "invoice_2026_03.pdf", "application/pdf", []byte("%PDF")},
		{domain.FormatXLSX, "invoice_2026_03.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", []byte("PK")},
		{domain.FormatCSV, "invoice_2026_03.csv", "text/csv; charset=utf-8", []byte("Customer Name")},
		{domain.FormatHTML, "invoice_2026_03.html", "text/html; charset=utf-8", []byte("<!doctype html>")},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			doc, err := svc.Export(context.Background(), tc.format, result())
			require.NoError(t, err)
			assert.Equal(t, tc.filename, doc.Filename)
			assert.Equal(t, tc.contentType, doc.ContentType)
			assert.True(t, bytes.HasPrefix(doc.Body, tc.magic))
		})
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := newTestService().Export(context.Background(), domain.Format("docx"), result())
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExportEntriesUsesToday(t *testing.T) {
	doc, err := newTestService().ExportEntries(context.Background(), []deliverydomain.EntryView{
		{CustomerName: "A", PricePerLtr: 50, Quantity: 2, EntryDate: date.New(2026, time.November, 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, "milk_entries_20261103.csv", doc.Filename)
	assert.Contains(t, string(doc.Body), "2026-11-02,A,2,50.00,100.00")
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]domain.Format{
		"pdf":   domain.FormatPDF,
		".PDF":  domain.FormatPDF,
		"xlsx":  domain.FormatXLSX,
		"Excel": domain.FormatXLSX,
		"csv":   domain.FormatCSV,
		"html":  domain.FormatHTML,
	} {
		got, err := domain.ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := domain.ParseFormat("docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
