package domain

import (
	"context"

	"github.com/smallbiznis/smartdairy/pkg/date"
	"gorm.io/gorm"
)

// ListFilter bounds are inclusive; zero dates are ignored.
type ListFilter struct {
	Start date.Date
	End   date.Date
}

type Repository interface {
	FindOne(ctx context.Context, db *gorm.DB, customerID int64, day date.Date) (*Entry, error)
	Upsert(ctx context.Context, db *gorm.DB, entry *Entry) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]EntryView, error)
	ListBetween(ctx context.Context, db *gorm.DB, start, endExclusive date.Date) ([]EntryView, error)
	Recent(ctx context.Context, db *gorm.DB, customerID int64, limit int) ([]Point, error)
	Stats(ctx context.Context, db *gorm.DB) (Stats, error)
}
