package repository

import (
	"context"

	"github.com/smallbiznis/smartdairy/internal/delivery/domain"
	"github.com/smallbiznis/smartdairy/pkg/date"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const viewColumns = `e.id, e.customer_id, c.name AS customer_name, c.price_per_ltr, c.contact, e.entry_date, e.quantity`

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindOne(ctx context.Context, db *gorm.DB, customerID int64, day date.Date) (*domain.Entry, error) {
	var entry domain.Entry
	err := db.WithContext(ctx).Raw(
		`SELECT id, customer_id, entry_date, quantity, created_at
		 FROM entries WHERE customer_id = ? AND entry_date = ?`,
		customerID,
		day,
	).Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, nil
	}
	return &entry, nil
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, entry *domain.Entry) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "entry_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).
		Create(entry).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.EntryView, error) {
	stmt := joined(ctx, db)
	if !filter.Start.IsZero() {
		stmt = stmt.Where("e.entry_date >= ?", filter.Start)
	}
	if !filter.End.IsZero() {
		stmt = stmt.Where("e.entry_date <= ?", filter.End)
	}

	var views []domain.EntryView
	if err := stmt.Order("e.entry_date DESC, c.name ASC").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repo) ListBetween(ctx context.Context, db *gorm.DB, start, endExclusive date.Date) ([]domain.EntryView, error) {
	var views []domain.EntryView
	err := joined(ctx, db).
		Where("e.entry_date >= ? AND e.entry_date < ?", start, endExclusive).
		Order("e.entry_date ASC, c.name ASC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repo) Recent(ctx context.Context, db *gorm.DB, customerID int64, limit int) ([]domain.Point, error) {
	var points []domain.Point
	err := db.WithContext(ctx).Raw(
		`SELECT entry_date, quantity FROM entries
		 WHERE customer_id = ?
		 ORDER BY entry_date DESC
		 LIMIT ?`,
		customerID,
		limit,
	).Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *repo) Stats(ctx context.Context, db *gorm.DB) (domain.Stats, error) {
	var stats domain.Stats
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(e.id) AS total_entries,
		        COALESCE(SUM(e.quantity), 0) AS total_litres,
		        COALESCE(SUM(e.quantity * c.price_per_ltr), 0) AS total_revenue
		 FROM entries e
		 JOIN customers c ON c.id = e.customer_id`,
	).Scan(&stats).Error
	return stats, err
}

func joined(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("entries AS e").
		Select(viewColumns).
		Joins("JOIN customers c ON c.id = e.customer_id")
}
