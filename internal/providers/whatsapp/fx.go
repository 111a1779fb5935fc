package whatsapp

import (
	"strings"

	"github.com/smallbiznis/smartdairy/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("providers.whatsapp",
	fx.Provide(NewFromSettings),
)

// NewFromSettings picks the webhook provider when a URL is configured.
// Settings are read once at startup; changing the webhook needs a restart.
func NewFromSettings(settings *config.SettingsHolder, log *zap.Logger) Provider {
	msg := settings.Get().Messaging
	if strings.TrimSpace(msg.WebhookURL) == "" {
		log.Info("whatsapp sending disabled, no webhook configured")
		return Disabled{}
	}
	return NewWebhook(WebhookConfig{
		URL:     msg.WebhookURL,
		Token:   msg.WebhookToken,
		Timeout: msg.Timeout,
	})
}
