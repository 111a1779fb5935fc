package service

import (
	"context"
	"errors"
	"slices"

	"github.com/shopspring/decimal"
	customerdomain "github.com/smallbiznis/smartdairy/internal/customer/domain"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
	"github.com/smallbiznis/smartdairy/internal/forecast/domain"
	"github.com/smallbiznis/smartdairy/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	CustomerSvc customerdomain.Service
	DeliverySvc deliverydomain.Service
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	log         *zap.Logger
	customerSvc customerdomain.Service
	deliverySvc deliverydomain.Service
	metrics     *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:         p.Log.Named("forecast.service"),
		customerSvc: p.CustomerSvc,
		deliverySvc: p.DeliverySvc,
		metrics:     p.Metrics,
	}
}

func (s *Service) Predict(ctx context.Context, customerID int64, window int) (domain.ForecastResult, error) {
	if window <= 0 {
		return domain.ForecastResult{}, domain.ErrInvalidWindow
	}
	if _, err := s.customerSvc.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) || errors.Is(err, customerdomain.ErrInvalidID) {
			return domain.ForecastResult{}, domain.ErrCustomerNotFound
		}
		return domain.ForecastResult{}, err
	}

	points, err := s.deliverySvc.Recent(ctx, customerID, domain.LookbackLimit)
	if err != nil {
		return domain.ForecastResult{}, err
	}

	result := Forecast(customerID, points, window)
	outcome := "predicted"
	if result.DataPoints == 0 {
		outcome = "no_history"
	}
	s.metrics.RecordForecast(ctx, outcome)
	s.log.Debug("forecast computed",
		zap.Int64("customer_id", customerID),
		zap.Int("data_points", result.DataPoints),
		zap.Int("window", window),
	)
	return result, nil
}

// Forecast builds the result from points in any order.
func Forecast(customerID int64, points []deliverydomain.Point, window int) domain.ForecastResult {
	result := domain.ForecastResult{
		CustomerID:       customerID,
		HistoricalSeries: []domain.SeriesPoint{},
		WindowSize:       window,
	}
	if len(points) == 0 {
		return result
	}

	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b deliverydomain.Point) int {
		return a.EntryDate.Time().Compare(b.EntryDate.Time())
	})

	quantities := make([]float64, len(sorted))
	minQty, maxQty, sum := sorted[0].Quantity, sorted[0].Quantity, 0.0
	for i, p := range sorted {
		quantities[i] = p.Quantity
		result.HistoricalSeries = append(result.HistoricalSeries, domain.SeriesPoint{
			Date:     p.EntryDate,
			Quantity: p.Quantity,
			Kind:     domain.KindHistorical,
		})
		sum += p.Quantity
		minQty = min(minQty, p.Quantity)
		maxQty = max(maxQty, p.Quantity)
	}

	result.PredictedQuantity = MovingAverage(quantities, window)
	result.DataPoints = len(sorted)
	result.HistoricalAvg = round2(sum / float64(len(sorted)))
	result.HistoricalMin = round2(minQty)
	result.HistoricalMax = round2(maxQty)
	return result
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
