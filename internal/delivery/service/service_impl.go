package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	customerdomain "github.com/smallbiznis/smartdairy/internal/customer/domain"
	"github.com/smallbiznis/smartdairy/internal/delivery/domain"
	"github.com/smallbiznis/smartdairy/internal/observability/metrics"
	"github.com/smallbiznis/smartdairy/pkg/date"
	"github.com/smallbiznis/smartdairy/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Repo        domain.Repository
	CustomerSvc customerdomain.Service
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	customerSvc customerdomain.Service
	metrics     *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("delivery.service"),
		repo:        p.Repo,
		customerSvc: p.CustomerSvc,
		metrics:     p.Metrics,
	}
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertEntryRequest) (domain.Entry, error) {
	if req.EntryDate.IsZero() {
		return domain.Entry{}, domain.ErrInvalidDate
	}
	if req.Quantity < 0 {
		return domain.Entry{}, domain.ErrInvalidQuantity
	}
	if _, err := s.customerSvc.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) || errors.Is(err, customerdomain.ErrInvalidID) {
			return domain.Entry{}, domain.ErrCustomerNotFound
		}
		return domain.Entry{}, err
	}

	var (
		saved    *domain.Entry
		replaced bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		previous, err := s.repo.FindOne(ctx, tx, req.CustomerID, req.EntryDate)
		if err != nil {
			return err
		}
		replaced = previous != nil

		if err := s.repo.Upsert(ctx, tx, &domain.Entry{
			CustomerID: req.CustomerID,
			EntryDate:  req.EntryDate,
			Quantity:   req.Quantity,
		}); err != nil {
			return err
		}

		// upsert ids are dialect-specific; re-read the row
		saved, err = s.repo.FindOne(ctx, tx, req.CustomerID, req.EntryDate)
		if err != nil {
			return err
		}
		if saved == nil {
			return errors.New("entry missing after upsert")
		}
		return nil
	})
	if err != nil {
		if db.IsForeignKeyErr(err) {
			return domain.Entry{}, domain.ErrCustomerNotFound
		}
		return domain.Entry{}, fmt.Errorf("upsert entry: %w", err)
	}

	operation := "created"
	if replaced {
		operation = "updated"
	}
	s.metrics.RecordEntry(ctx, operation)
	s.log.Debug("entry recorded",
		zap.Int64("customer_id", req.CustomerID),
		zap.String("entry_date", req.EntryDate.String()),
		zap.String("operation", operation),
	)

	return *saved, nil
}

func (s *Service) List(ctx context.Context, req domain.ListEntriesRequest) ([]domain.EntryView, error) {
	var filter domain.ListFilter
	if req.StartDate != nil {
		filter.Start = *req.StartDate
	}
	if req.EndDate != nil {
		filter.End = *req.EndDate
	}
	if !filter.Start.IsZero() && !filter.End.IsZero() && filter.End.Before(filter.Start) {
		return nil, domain.ErrInvalidRange
	}

	views, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return orEmpty(views), nil
}

func (s *Service) ListMonthly(ctx context.Context, year int, month time.Month) ([]domain.EntryView, error) {
	if year < 1 || month < time.January || month > time.December {
		return nil, domain.ErrInvalidPeriod
	}

	start, next := date.MonthRange(year, month)
	views, err := s.repo.ListBetween(ctx, s.db, start, next)
	if err != nil {
		return nil, fmt.Errorf("list monthly entries: %w", err)
	}
	return orEmpty(views), nil
}

func (s *Service) Recent(ctx context.Context, customerID int64, limit int) ([]domain.Point, error) {
	if limit <= 0 {
		return []domain.Point{}, nil
	}

	points, err := s.repo.Recent(ctx, s.db, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent entries: %w", err)
	}
	if points == nil {
		points = []domain.Point{}
	}
	return points, nil
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	stats, err := s.repo.Stats(ctx, s.db)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("entry stats: %w", err)
	}
	return stats, nil
}

func orEmpty(views []domain.EntryView) []domain.EntryView {
	if views == nil {
		return []domain.EntryView{}
	}
	return views
}
