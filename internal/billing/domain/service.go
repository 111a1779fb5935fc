package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Calculate(ctx context.Context, year int, month time.Month) (BillingResult, error)
}

var (
	ErrInvalidPeriod = errors.New("invalid_period")
	ErrNoBill        = errors.New("no_bill")
)
