package observability

import (
	"testing"

	"github.com/smallbiznis/smartdairy/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("OTEL_ENABLED", "")

	cfg := LoadConfig(config.Config{AppName: "", Environment: "production", AppVersion: "1.2.0"})
	assert.Equal(t, "smartdairy", cfg.ServiceName)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.OtelEnabled)
	assert.False(t, cfg.Debug())

	dev := LoadConfig(config.Config{Environment: "development"})
	assert.Equal(t, "console", dev.LogFormat)
	assert.True(t, dev.Debug())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "yes")
	t.Setenv("OTEL_SAMPLING_RATIO", "0.5")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "HTTP")

	cfg := LoadConfig(config.Config{Environment: "production"})
	assert.True(t, cfg.OtelEnabled)
	assert.Equal(t, 0.5, cfg.OtelSamplingRatio)
	assert.Equal(t, "http", cfg.OtelExporterProtocol)
}
