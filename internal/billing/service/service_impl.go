package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/smartdairy/internal/billing/domain"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
	"github.com/smallbiznis/smartdairy/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	DeliverySvc deliverydomain.Service
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	log         *zap.Logger
	deliverySvc deliverydomain.Service
	metrics     *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:         p.Log.Named("billing.service"),
		deliverySvc: p.DeliverySvc,
		metrics:     p.Metrics,
	}
}

func (s *Service) Calculate(ctx context.Context, year int, month time.Month) (domain.BillingResult, error) {
	if year < 1 || month < time.January || month > time.December {
		return domain.BillingResult{}, domain.ErrInvalidPeriod
	}

	views, err := s.deliverySvc.ListMonthly(ctx, year, month)
	if err != nil {
		if errors.Is(err, deliverydomain.ErrInvalidPeriod) {
			return domain.BillingResult{}, domain.ErrInvalidPeriod
		}
		return domain.BillingResult{}, err
	}

	result := Aggregate(year, month, views)

	litres, _ := result.TotalLitres().Float64()
	s.metrics.RecordBillingRun(ctx, litres, result.TotalCustomers)
	s.log.Info("billing calculated",
		zap.String("period", result.Period()),
		zap.Int("customers", result.TotalCustomers),
		zap.String("grand_total", result.GrandTotal.StringFixed(2)),
	)

	return result, nil
}

// Aggregate groups monthly entry views per customer in first-seen order.
func Aggregate(year int, month time.Month, views []deliverydomain.EntryView) domain.BillingResult {
	result := domain.BillingResult{
		Year:       year,
		Month:      month,
		Customers:  []domain.CustomerBill{},
		GrandTotal: decimal.Zero,
	}

	index := make(map[int64]int, len(views))
	for _, view := range views {
		pos, ok := index[view.CustomerID]
		if !ok {
			pos = len(result.Customers)
			index[view.CustomerID] = pos
			result.Customers = append(result.Customers, domain.CustomerBill{
				CustomerID:  view.CustomerID,
				Name:        view.CustomerName,
				PricePerLtr: decimal.NewFromFloat(view.PricePerLtr),
				Contact:     view.Contact,
				TotalLitres: decimal.Zero,
			})
		}
		bill := &result.Customers[pos]
		bill.TotalLitres = bill.TotalLitres.Add(decimal.NewFromFloat(view.Quantity))
	}

	for i := range result.Customers {
		bill := &result.Customers[i]
		bill.TotalAmount = bill.TotalLitres.Mul(bill.PricePerLtr)
		result.GrandTotal = result.GrandTotal.Add(bill.TotalAmount)
	}
	result.TotalCustomers = len(result.Customers)

	return result
}
