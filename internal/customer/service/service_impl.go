package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smallbiznis/smartdairy/internal/customer/domain"
	"github.com/smallbiznis/smartdairy/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("customer.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	name, price, contact, err := normalize(req.Name, req.PricePerLtr, req.Contact)
	if err != nil {
		return domain.Customer{}, err
	}

	customer := domain.Customer{
		Name:        name,
		PricePerLtr: price,
		Contact:     contact,
	}
	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Customer{}, domain.ErrDuplicateName
		}
		return domain.Customer{}, fmt.Errorf("insert customer: %w", err)
	}

	s.log.Info("customer created", zap.Int64("customer_id", customer.ID))
	return customer, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		customers = append(customers, *item)
	}
	return customers, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Customer, error) {
	if id <= 0 {
		return domain.Customer{}, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("find customer: %w", err)
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	if req.ID <= 0 {
		return domain.Customer{}, domain.ErrInvalidID
	}
	name, price, contact, err := normalize(req.Name, req.PricePerLtr, req.Contact)
	if err != nil {
		return domain.Customer{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("find customer: %w", err)
	}
	if existing == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	existing.Name = name
	existing.PricePerLtr = price
	existing.Contact = contact
	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Customer{}, domain.ErrDuplicateName
		}
		return domain.Customer{}, fmt.Errorf("update customer: %w", err)
	}

	s.log.Info("customer updated", zap.Int64("customer_id", existing.ID))
	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entries, err := s.repo.CountEntries(ctx, tx, id)
		if err != nil {
			return err
		}
		if entries > 0 {
			return domain.ErrCustomerHasEntries
		}

		affected, err := s.repo.Delete(ctx, tx, id)
		if err != nil {
			if db.IsForeignKeyErr(err) {
				return domain.ErrCustomerHasEntries
			}
			return err
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	switch {
	case err == nil:
		s.log.Info("customer deleted", zap.Int64("customer_id", id))
		return nil
	case errors.Is(err, domain.ErrCustomerHasEntries), errors.Is(err, domain.ErrNotFound):
		return err
	default:
		return fmt.Errorf("delete customer: %w", err)
	}
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx, s.db)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

func normalize(name string, price float64, contact *string) (string, float64, *string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, nil, domain.ErrInvalidName
	}
	if price < 0 {
		return "", 0, nil, domain.ErrInvalidPrice
	}
	if contact != nil {
		trimmed := strings.TrimSpace(*contact)
		if trimmed == "" {
			contact = nil
		} else {
			contact = &trimmed
		}
	}
	return name, price, contact, nil
}
