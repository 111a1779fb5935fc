package domain

import (
	"context"

	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
)

// Summary is the dashboard view over every recorded entry.
type Summary struct {
	TotalCustomers int64                      `json:"total_customers"`
	TotalEntries   int64                      `json:"total_entries"`
	TotalLitres    float64                    `json:"total_litres"`
	TotalRevenue   float64                    `json:"total_revenue"`
	Recent         []deliverydomain.EntryView `json:"recent"`
}

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}
