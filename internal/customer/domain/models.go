package domain

import "time"

// Customer is a delivery account billed at its current per-litre price.
type Customer struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex" json:"name"`
	PricePerLtr float64   `gorm:"column:price_per_ltr;not null" json:"price_per_ltr"`
	Contact     *string   `gorm:"column:contact" json:"contact"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

// ContactValue returns the contact or "" when absent.
func (c Customer) ContactValue() string {
	if c.Contact == nil {
		return ""
	}
	return *c.Contact
}
