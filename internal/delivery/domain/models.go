package domain

import (
	"time"

	"github.com/smallbiznis/smartdairy/pkg/date"
)

// Entry is one customer's delivered quantity for one calendar day.
// (CustomerID, EntryDate) is unique; a later write replaces the quantity.
type Entry struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"not null" json:"customer_id"`
	EntryDate  date.Date `gorm:"column:entry_date;type:date;not null" json:"entry_date"`
	Quantity   float64   `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "entries" }

// EntryView is an entry joined with its customer's current name, price and contact.
type EntryView struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	PricePerLtr  float64   `json:"price_per_ltr"`
	Contact      *string   `json:"contact"`
	EntryDate    date.Date `json:"entry_date"`
	Quantity     float64   `json:"quantity"`
}

func (v EntryView) Amount() float64 {
	return v.Quantity * v.PricePerLtr
}

// Point is a single (date, quantity) observation of a customer's history.
type Point struct {
	EntryDate date.Date `json:"date"`
	Quantity  float64   `json:"quantity"`
}

// Stats aggregates every recorded entry, priced at current customer prices.
type Stats struct {
	TotalEntries int64   `json:"total_entries"`
	TotalLitres  float64 `json:"total_litres"`
	TotalRevenue float64 `json:"total_revenue"`
}
