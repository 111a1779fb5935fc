package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/smartdairy/pkg/date"
)

const (
	// LookbackLimit caps how many recent entries feed a forecast.
	LookbackLimit = 30

	DefaultWindow = 7
	MinWindow     = 3
	MaxWindow     = 30
)

type PointKind string

const (
	KindHistorical PointKind = "historical"
	KindPredicted  PointKind = "predicted"
)

type SeriesPoint struct {
	Date     date.Date `json:"date"`
	Quantity float64   `json:"quantity"`
	Kind     PointKind `json:"kind"`
}

type ForecastResult struct {
	CustomerID        int64         `json:"customer_id"`
	PredictedQuantity float64       `json:"predicted_quantity"`
	HistoricalSeries  []SeriesPoint `json:"historical_series"`
	HistoricalAvg     float64       `json:"historical_avg"`
	HistoricalMin     float64       `json:"historical_min"`
	HistoricalMax     float64       `json:"historical_max"`
	DataPoints        int           `json:"data_points"`
	WindowSize        int           `json:"window_size"`
}

// Series is the display series: history oldest first, then the prediction
// dated one day after the last observation. Empty history yields no points.
func (r ForecastResult) Series() []SeriesPoint {
	if len(r.HistoricalSeries) == 0 {
		return []SeriesPoint{}
	}
	series := make([]SeriesPoint, 0, len(r.HistoricalSeries)+1)
	series = append(series, r.HistoricalSeries...)
	last := r.HistoricalSeries[len(r.HistoricalSeries)-1]
	series = append(series, SeriesPoint{
		Date:     last.Date.AddDays(1),
		Quantity: r.PredictedQuantity,
		Kind:     KindPredicted,
	})
	return series
}

type Service interface {
	Predict(ctx context.Context, customerID int64, window int) (ForecastResult, error)
}

var (
	ErrInvalidWindow    = errors.New("invalid_window")
	ErrCustomerNotFound = errors.New("customer_not_found")
)
