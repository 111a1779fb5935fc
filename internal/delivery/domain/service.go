package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/smartdairy/pkg/date"
)

type UpsertEntryRequest struct {
	CustomerID int64     `json:"customer_id"`
	EntryDate  date.Date `json:"entry_date"`
	Quantity   float64   `json:"quantity"`
}

type ListEntriesRequest struct {
	StartDate *date.Date
	EndDate   *date.Date
}

type Service interface {
	// Upsert records the quantity for (customer, day), replacing any earlier value.
	Upsert(context.Context, UpsertEntryRequest) (Entry, error)
	List(context.Context, ListEntriesRequest) ([]EntryView, error)
	ListMonthly(ctx context.Context, year int, month time.Month) ([]EntryView, error)
	// Recent returns up to limit points for the customer, newest first.
	Recent(ctx context.Context, customerID int64, limit int) ([]Point, error)
	Stats(context.Context) (Stats, error)
}

var (
	ErrInvalidQuantity  = errors.New("invalid_quantity")
	ErrInvalidDate      = errors.New("invalid_date")
	ErrInvalidRange     = errors.New("invalid_range")
	ErrInvalidPeriod    = errors.New("invalid_period")
	ErrCustomerNotFound = errors.New("customer_not_found")
)
