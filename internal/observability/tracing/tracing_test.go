package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSafeAttributesDropsCustomerDetails(t *testing.T) {
	attrs := SafeAttributes(
		attribute.String("http.route", "/api/customers/:id"),
		attribute.String("customer.contact", "9876543210"),
		attribute.String("customer_name", "Ramesh"),
	)
	require.Len(t, attrs, 1)
	assert.Equal(t, attribute.Key("http.route"), attrs[0].Key)
}

func TestSafeErrorTruncates(t *testing.T) {
	assert.Nil(t, SafeError(nil))
	err := SafeError(errors.New(strings.Repeat("x", 400)))
	assert.Len(t, err.Error(), 256)
}

func TestGinMiddlewareRecordsServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/billing/:year/:month", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("database is locked"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/billing/2026/10", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET /api/billing/:year/:month", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestNewProviderDisabledStillProducesSpans(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	provider, err := NewProvider(nil, Config{ServiceName: "smartdairy"}, nil)
	require.NoError(t, err)
	defer provider.Shutdown(context.Background())

	_, span := provider.Tracer("test").Start(context.Background(), "op")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()
}

func TestNewProviderRejectsUnknownProtocol(t *testing.T) {
	_, err := NewProvider(nil, Config{Enabled: true, ExporterProtocol: "carrier-pigeon"}, nil)
	assert.Error(t, err)
}
