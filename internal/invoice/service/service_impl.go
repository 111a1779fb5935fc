package service

import (
	"context"
	"fmt"

	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
	"github.com/smallbiznis/smartdairy/internal/clock"
	"github.com/smallbiznis/smartdairy/internal/config"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
	"github.com/smallbiznis/smartdairy/internal/invoice/domain"
	"github.com/smallbiznis/smartdairy/internal/invoice/render"
	"github.com/smallbiznis/smartdairy/internal/observability/metrics"
	"github.com/smallbiznis/smartdairy/internal/providers/pdf"
	"github.com/smallbiznis/smartdairy/pkg/date"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	PDF      pdf.Provider
	Settings *config.SettingsHolder
	Clock    clock.Clock
	Metrics  *metrics.Metrics `optional:"true"`
}

type Service struct {
	log      *zap.Logger
	pdf      pdf.Provider
	settings *config.SettingsHolder
	clock    clock.Clock
	html     *render.HTMLRenderer
	metrics  *metrics.Metrics
}

func NewService(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("invoice.service"),
		pdf:      p.PDF,
		settings: p.Settings,
		clock:    p.Clock,
		html:     render.NewHTMLRenderer(),
		metrics:  p.Metrics,
	}
}

func (s *Service) Export(ctx context.Context, format domain.Format, result billingdomain.BillingResult) (domain.Document, error) {
	table := render.Rows(result)
	opts := render.Options{
		Brand:       s.settings.Get().BrandName,
		GeneratedOn: s.clock.Now().Format("2006-01-02 15:04"),
	}

	var (
		body []byte
		err  error
	)
	switch format {
	case domain.FormatPDF:
		body, err = render.RenderPDF(ctx, s.pdf, table, opts)
	case domain.FormatXLSX:
		body, err = render.RenderXLSX(table)
	case domain.FormatCSV:
		body, err = render.RenderCSV(table)
	case domain.FormatHTML:
		body, err = s.html.Render(table, opts)
	default:
		return domain.Document{}, domain.ErrUnsupportedFormat
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("render %s invoice: %w", format, err)
	}

	s.metrics.RecordInvoiceExport(ctx, string(format))
	s.log.Info("invoice exported",
		zap.String("period", result.Period()),
		zap.String("format", string(format)),
		zap.Int("bytes", len(body)),
	)

	return domain.Document{
		Filename:    fmt.Sprintf("invoice_%d_%02d.%s", result.Year, int(result.Month), format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func (s *Service) ExportEntries(ctx context.Context, views []deliverydomain.EntryView) (domain.Document, error) {
	body, err := render.RenderEntriesCSV(views)
	if err != nil {
		return domain.Document{}, fmt.Errorf("render entries csv: %w", err)
	}
	s.metrics.RecordInvoiceExport(ctx, "entries_csv")

	return domain.Document{
		Filename:    fmt.Sprintf("milk_entries_%s.csv", date.Of(s.clock.Now()).Compact()),
		ContentType: domain.FormatCSV.ContentType(),
		Body:        body,
	}, nil
}
