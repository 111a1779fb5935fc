package domain

import (
	"context"
	"errors"
)

type CreateCustomerRequest struct {
	Name        string  `json:"name"`
	PricePerLtr float64 `json:"price_per_ltr"`
	Contact     *string `json:"contact"`
}

type UpdateCustomerRequest struct {
	ID          int64   `json:"-"`
	Name        string  `json:"name"`
	PricePerLtr float64 `json:"price_per_ltr"`
	Contact     *string `json:"contact"`
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	List(context.Context) ([]Customer, error)
	GetByID(context.Context, int64) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	// Delete refuses customers that still have entries; nothing is cascaded.
	Delete(context.Context, int64) error
	Count(context.Context) (int64, error)
}

var (
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidPrice       = errors.New("invalid_price")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrDuplicateName      = errors.New("duplicate_name")
	ErrCustomerHasEntries = errors.New("customer_has_entries")
)
