package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Customer, error)
	List(ctx context.Context, db *gorm.DB) ([]*Customer, error)
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CountEntries(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
