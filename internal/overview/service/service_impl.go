package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/smartdairy/internal/config"
	customerdomain "github.com/smallbiznis/smartdairy/internal/customer/domain"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
	"github.com/smallbiznis/smartdairy/internal/overview/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	Settings    *config.SettingsHolder
	CustomerSvc customerdomain.Service
	DeliverySvc deliverydomain.Service
}

type Service struct {
	log       *zap.Logger
	settings  *config.SettingsHolder
	customers customerdomain.Service
	entries   deliverydomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("overview.service"),
		settings:  p.Settings,
		customers: p.CustomerSvc,
		entries:   p.DeliverySvc,
	}
}

func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	customers, err := s.customers.Count(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	stats, err := s.entries.Stats(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	// Recent follows the entries list order: newest day first, then name.
	views, err := s.entries.List(ctx, deliverydomain.ListEntriesRequest{})
	if err != nil {
		return domain.Summary{}, err
	}

	limit := s.settings.Get().Overview.RecentLimit
	if limit < 0 {
		limit = 0
	}
	if len(views) > limit {
		views = views[:limit]
	}

	return domain.Summary{
		TotalCustomers: customers,
		TotalEntries:   stats.TotalEntries,
		TotalLitres:    round2(stats.TotalLitres),
		TotalRevenue:   round2(stats.TotalRevenue),
		Recent:         views,
	}, nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
