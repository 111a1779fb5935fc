package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
	"github.com/smallbiznis/smartdairy/internal/config"
	customerdomain "github.com/smallbiznis/smartdairy/internal/customer/domain"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
	forecastdomain "github.com/smallbiznis/smartdairy/internal/forecast/domain"
	invoicedomain "github.com/smallbiznis/smartdairy/internal/invoice/domain"
	notificationdomain "github.com/smallbiznis/smartdairy/internal/notification/domain"
	"github.com/smallbiznis/smartdairy/internal/observability"
	obslogger "github.com/smallbiznis/smartdairy/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/smartdairy/internal/observability/metrics"
	obstracing "github.com/smallbiznis/smartdairy/internal/observability/tracing"
	overviewdomain "github.com/smallbiznis/smartdairy/internal/overview/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(httpMetrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(httpMetrics.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	settings        *config.SettingsHolder
	customerSvc     customerdomain.Service
	deliverySvc     deliverydomain.Service
	billingSvc      billingdomain.Service
	invoiceSvc      invoicedomain.Service
	forecastSvc     forecastdomain.Service
	notificationSvc notificationdomain.Service
	overviewSvc     overviewdomain.Service
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Settings        *config.SettingsHolder
	CustomerSvc     customerdomain.Service
	DeliverySvc     deliverydomain.Service
	BillingSvc      billingdomain.Service
	InvoiceSvc      invoicedomain.Service
	ForecastSvc     forecastdomain.Service
	NotificationSvc notificationdomain.Service
	OverviewSvc     overviewdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		settings:        p.Settings,
		customerSvc:     p.CustomerSvc,
		deliverySvc:     p.DeliverySvc,
		billingSvc:      p.BillingSvc,
		invoiceSvc:      p.InvoiceSvc,
		forecastSvc:     p.ForecastSvc,
		notificationSvc: p.NotificationSvc,
		overviewSvc:     p.OverviewSvc,
	}

	svc.registerAPIRoutes()
	svc.registerFallback()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.CustomerContext(), s.GetCustomerByID)
	api.PUT("/customers/:id", s.CustomerContext(), s.UpdateCustomer)
	api.DELETE("/customers/:id", s.CustomerContext(), s.DeleteCustomer)

	// -------- Entries --------
	api.POST("/entries", s.UpsertEntry)
	api.GET("/entries", s.ListEntries)
	api.GET("/entries/export", s.ExportEntries)

	// -------- Billing --------
	billing := api.Group("/billing/:year/:month")
	{
		billing.GET("", s.GetMonthlyBill)
		billing.GET("/invoice/:format", s.DownloadInvoice)
		billing.GET("/customers/:id/notification", s.CustomerContext(), s.GetBillNotification)
		billing.POST("/customers/:id/send", s.CustomerContext(), s.SendBillNotification)
	}

	// -------- Forecast --------
	api.GET("/forecast/:id", s.CustomerContext(), s.GetForecast)

	// -------- Overview --------
	api.GET("/overview", s.GetOverview)
}

func (s *Server) registerFallback() {
	s.engine.NoRoute(func(c *gin.Context) {
		AbortWithError(c, ErrNotFound)
	})
}
