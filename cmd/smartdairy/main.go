package main

import (
	"github.com/smallbiznis/smartdairy/internal/billing"
	"github.com/smallbiznis/smartdairy/internal/clock"
	"github.com/smallbiznis/smartdairy/internal/config"
	"github.com/smallbiznis/smartdairy/internal/customer"
	"github.com/smallbiznis/smartdairy/internal/delivery"
	"github.com/smallbiznis/smartdairy/internal/forecast"
	"github.com/smallbiznis/smartdairy/internal/invoice"
	"github.com/smallbiznis/smartdairy/internal/migration"
	"github.com/smallbiznis/smartdairy/internal/notification"
	"github.com/smallbiznis/smartdairy/internal/observability"
	"github.com/smallbiznis/smartdairy/internal/overview"
	"github.com/smallbiznis/smartdairy/internal/providers"
	"github.com/smallbiznis/smartdairy/internal/server"
	"github.com/smallbiznis/smartdairy/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),

		// Core Infrastructure
		config.Module,
		observability.Module,
		db.Module,
		migration.Module,
		clock.Module,
		providers.Module,

		// Functional Domains
		customer.Module,
		delivery.Module,
		billing.Module,
		forecast.Module,
		invoice.Module,
		notification.Module,
		overview.Module,

		server.Module,
	)
	app.Run()
}
