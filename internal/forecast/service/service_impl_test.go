package service

import (
	"context"
	"testing"
	"time"

	customerrepo "github.com/smallbiznis/smartdairy/internal/customer/repository"
	customersvc "github.com/smallbiznis/smartdairy/internal/customer/service"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
	deliveryrepo "github.com/smallbiznis/smartdairy/internal/delivery/repository"
	deliverysvc "github.com/smallbiznis/smartdairy/internal/delivery/service"
	"github.com/smallbiznis/smartdairy/internal/forecast/domain"
	"github.com/smallbiznis/smartdairy/pkg/date"
	"github.com/smallbiznis/smartdairy/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupForecastService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	customers := customersvc.New(customersvc.Params{DB: db, Log: zap.NewNop(), Repo: customerrepo.Provide()})
	deliveries := deliverysvc.New(deliverysvc.Params{
		DB:          db,
		Log:         zap.NewNop(),
		Repo:        deliveryrepo.Provide(),
		CustomerSvc: customers,
	})
	return New(Params{Log: zap.NewNop(), CustomerSvc: customers, DeliverySvc: deliveries}), db
}

func TestMovingAverage(t *testing.T) {
	assert.Equal(t, 6.0, MovingAverage([]float64{4, 6, 8}, 3))
	assert.Equal(t, 3.0, MovingAverage([]float64{2, 4}, 7))
	assert.Equal(t, 7.0, MovingAverage([]float64{100, 6, 8}, 2))
	assert.Equal(t, 0.0, MovingAverage(nil, 7))
}

func TestPredictUsesWindowOverChronologicalHistory(t *testing.T) {
	svc, db := setupForecastService(t)
	a := dbtest.SeedCustomer(t, db, "A", 50, nil)
	dbtest.SeedEntry(t, db, a, "2026-10-03", 8)
	dbtest.SeedEntry(t, db, a, "2026-10-01", 4)
	dbtest.SeedEntry(t, db, a, "2026-10-02", 6)

	result, err := svc.Predict(context.Background(), a, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, result.PredictedQuantity)
	assert.Equal(t, 3, result.DataPoints)
	assert.Equal(t, 3, result.WindowSize)
	assert.Equal(t, 6.0, result.HistoricalAvg)
	assert.Equal(t, 4.0, result.HistoricalMin)
	assert.Equal(t, 8.0, result.HistoricalMax)

	series := result.Series()
	require.Len(t, series, 4)
	assert.Equal(t, "2026-10-01", series[0].Date.String())
	assert.Equal(t, domain.KindHistorical, series[2].Kind)
	assert.Equal(t, "2026-10-04", series[3].Date.String())
	assert.Equal(t, domain.KindPredicted, series[3].Kind)
	assert.Equal(t, 6.0, series[3].Quantity)
}

func TestPredictWithFewerPointsThanWindow(t *testing.T) {
	svc, db := setupForecastService(t)
	a := dbtest.SeedCustomer(t, db, "A", 50, nil)
	dbtest.SeedEntry(t, db, a, "2026-10-01", 2)
	dbtest.SeedEntry(t, db, a, "2026-10-02", 4)

	result, err := svc.Predict(context.Background(), a, 7)
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.PredictedQuantity)
}

func TestPredictWithoutHistory(t *testing.T) {
	svc, db := setupForecastService(t)
	a := dbtest.SeedCustomer(t, db, "A", 50, nil)

	result, err := svc.Predict(context.Background(), a, 7)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.PredictedQuantity)
	assert.Equal(t, 0, result.DataPoints)
	assert.Empty(t, result.HistoricalSeries)
	assert.Empty(t, result.Series())
}

func TestPredictLooksBackAtMostThirtyEntries(t *testing.T) {
	svc, db := setupForecastService(t)
	a := dbtest.SeedCustomer(t, db, "A", 50, nil)
	start := date.New(2026, time.August, 1)
	for i := 0; i < 40; i++ {
		qty := 1.0
		if i < 10 {
			qty = 100
		}
		dbtest.SeedEntry(t, db, a, start.AddDays(i).String(), qty)
	}

	result, err := svc.Predict(context.Background(), a, domain.MaxWindow)
	require.NoError(t, err)
	assert.Equal(t, domain.LookbackLimit, result.DataPoints)
	assert.Equal(t, 1.0, result.PredictedQuantity)
	assert.Equal(t, start.AddDays(10).String(), result.HistoricalSeries[0].Date.String())
}

func TestPredictRejectsBadInput(t *testing.T) {
	svc, db := setupForecastService(t)
	a := dbtest.SeedCustomer(t, db, "A", 50, nil)

	_, err := svc.Predict(context.Background(), a, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)

	_, err = svc.Predict(context.Background(), 404, 7)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestForecastRoundsSummary(t *testing.T) {
	points := []deliverydomain.Point{
		{EntryDate: date.New(2026, time.October, 1), Quantity: 1},
		{EntryDate: date.New(2026, time.October, 2), Quantity: 1},
		{EntryDate: date.New(2026, time.October, 3), Quantity: 2},
	}
	result := Forecast(1, points, 3)
	assert.Equal(t, 1.33, result.HistoricalAvg)
	assert.InDelta(t, 4.0/3.0, result.PredictedQuantity, 1e-12)
}
