package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Settings are the operator-tunable knobs of the dairy, read from dairy.yml.
type Settings struct {
	BrandName string            `mapstructure:"brand_name"`
	Messaging MessagingSettings `mapstructure:"messaging"`
	Forecast  ForecastSettings  `mapstructure:"forecast"`
	Overview  OverviewSettings  `mapstructure:"overview"`
}

type MessagingSettings struct {
	Host               string        `mapstructure:"host"`
	DefaultCountryCode string        `mapstructure:"default_country_code"`
	LocalNumberLength  int           `mapstructure:"local_number_length"`
	WebhookURL         string        `mapstructure:"webhook_url"`
	WebhookToken       string        `mapstructure:"webhook_token"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

type ForecastSettings struct {
	DefaultWindow int `mapstructure:"default_window"`
}

type OverviewSettings struct {
	RecentLimit int `mapstructure:"recent_limit"`
}

func DefaultSettings() Settings {
	return Settings{
		BrandName: "SmartDairy",
		Messaging: MessagingSettings{
			Host:               "wa.me",
			DefaultCountryCode: "91",
			LocalNumberLength:  10,
			Timeout:            15 * time.Second,
		},
		Forecast: ForecastSettings{DefaultWindow: 7},
		Overview: OverviewSettings{RecentLimit: 10},
	}
}

type SettingsHolder struct {
	current atomic.Value // holds Settings
}

// NewStaticSettings wraps fixed settings, mostly for tests and tools.
func NewStaticSettings(s Settings) *SettingsHolder {
	holder := &SettingsHolder{}
	holder.current.Store(s)
	return holder
}

func NewSettingsHolder(cfg Config) (*SettingsHolder, error) {
	v := viper.New()

	if cfg.SettingsPath != "" {
		v.SetConfigFile(cfg.SettingsPath)
	} else {
		v.SetConfigName("dairy")
		v.SetConfigType("yml")
		v.AddConfigPath("/etc/smartdairy")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SMARTDAIRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setSettingsDefaults(v, DefaultSettings())

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		found = false
	}

	s, err := decodeSettings(v)
	if err != nil {
		return nil, err
	}
	if err := validateSettings(s); err != nil {
		return nil, err
	}

	holder := NewStaticSettings(s)
	if !found {
		return holder, nil
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := decodeSettings(v)
		if err != nil {
			log.Printf("[dairy-settings] reload failed: %v", err)
			return
		}
		if err := validateSettings(updated); err != nil {
			log.Printf("[dairy-settings] invalid settings ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[dairy-settings] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *SettingsHolder) Get() Settings {
	return h.current.Load().(Settings)
}

// decodeSettings goes through the merged key set so partial files keep defaults.
func decodeSettings(v *viper.Viper) (Settings, error) {
	var wrapper struct {
		Dairy Settings `mapstructure:"dairy"`
	}
	if err := v.Unmarshal(&wrapper); err != nil {
		return Settings{}, err
	}
	return wrapper.Dairy, nil
}

func setSettingsDefaults(v *viper.Viper, d Settings) {
	v.SetDefault("dairy.brand_name", d.BrandName)
	v.SetDefault("dairy.messaging.host", d.Messaging.Host)
	v.SetDefault("dairy.messaging.default_country_code", d.Messaging.DefaultCountryCode)
	v.SetDefault("dairy.messaging.local_number_length", d.Messaging.LocalNumberLength)
	v.SetDefault("dairy.messaging.webhook_url", d.Messaging.WebhookURL)
	v.SetDefault("dairy.messaging.webhook_token", d.Messaging.WebhookToken)
	v.SetDefault("dairy.messaging.timeout", d.Messaging.Timeout)
	v.SetDefault("dairy.forecast.default_window", d.Forecast.DefaultWindow)
	v.SetDefault("dairy.overview.recent_limit", d.Overview.RecentLimit)
}

func validateSettings(s Settings) error {
	if strings.TrimSpace(s.BrandName) == "" {
		return errors.New("dairy.brand_name cannot be empty")
	}
	if strings.TrimSpace(s.Messaging.Host) == "" {
		return errors.New("dairy.messaging.host cannot be empty")
	}
	if strings.Trim(s.Messaging.DefaultCountryCode, "0123456789") != "" {
		return fmt.Errorf("dairy.messaging.default_country_code must be digits, got %q", s.Messaging.DefaultCountryCode)
	}
	if s.Messaging.LocalNumberLength <= 0 {
		return errors.New("dairy.messaging.local_number_length must be positive")
	}
	if s.Forecast.DefaultWindow <= 0 {
		return errors.New("dairy.forecast.default_window must be positive")
	}
	if s.Overview.RecentLimit <= 0 {
		return errors.New("dairy.overview.recent_limit must be positive")
	}
	return nil
}
