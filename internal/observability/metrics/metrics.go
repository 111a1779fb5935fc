package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes the dairy's domain instruments.
type Metrics struct {
	entriesRecorded  metric.Int64Counter
	billingRuns      metric.Int64Counter
	billedLitres     metric.Float64Counter
	invoiceExports   metric.Int64Counter
	forecasts        metric.Int64Counter
	notificationSent metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(30*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New creates the domain instruments on the given provider.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "smartdairy"
	}
	meter := provider.Meter(name)

	m := &Metrics{}
	var err error
	if m.entriesRecorded, err = meter.Int64Counter("smartdairy_entries_recorded_total",
		metric.WithDescription("Milk entries created or overwritten")); err != nil {
		return nil, err
	}
	if m.billingRuns, err = meter.Int64Counter("smartdairy_billing_runs_total"); err != nil {
		return nil, err
	}
	if m.billedLitres, err = meter.Float64Counter("smartdairy_billed_litres_total",
		metric.WithUnit("L")); err != nil {
		return nil, err
	}
	if m.invoiceExports, err = meter.Int64Counter("smartdairy_invoice_exports_total"); err != nil {
		return nil, err
	}
	if m.forecasts, err = meter.Int64Counter("smartdairy_forecasts_total"); err != nil {
		return nil, err
	}
	if m.notificationSent, err = meter.Int64Counter("smartdairy_notifications_total"); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordEntry counts an upsert; operation is "created" or "updated".
func (m *Metrics) RecordEntry(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("operation", strings.TrimSpace(operation)))
	m.entriesRecorded.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordBillingRun counts a monthly aggregation and the litres it covered.
func (m *Metrics) RecordBillingRun(ctx context.Context, litres float64, rows int) {
	if m == nil {
		return
	}
	outcome := "billed"
	if rows == 0 {
		outcome = "empty"
	}
	attrs := FilterAttributes(attribute.String("outcome", outcome))
	m.billingRuns.Add(ctx, 1, metric.WithAttributes(attrs...))
	if litres > 0 {
		m.billedLitres.Add(ctx, litres)
	}
}

func (m *Metrics) RecordInvoiceExport(ctx context.Context, format string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("format", strings.ToLower(strings.TrimSpace(format))))
	m.invoiceExports.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func (m *Metrics) RecordForecast(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("outcome", strings.TrimSpace(outcome)))
	m.forecasts.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func (m *Metrics) RecordNotification(ctx context.Context, provider, outcome string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("provider", strings.TrimSpace(provider)),
		attribute.String("outcome", strings.TrimSpace(outcome)),
	)
	m.notificationSent.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

// customer_id and names stay out of labels.
var allowedLabelKeys = map[attribute.Key]struct{}{
	"operation":   {},
	"outcome":     {},
	"format":      {},
	"provider":    {},
	"route":       {},
	"method":      {},
	"status_code": {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
