package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerBill is one customer's aggregate for a billing month.
type CustomerBill struct {
	CustomerID  int64           `json:"customer_id"`
	Name        string          `json:"name"`
	PricePerLtr decimal.Decimal `json:"price_per_ltr"`
	Contact     *string         `json:"contact"`
	TotalLitres decimal.Decimal `json:"total_litres"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// BillingResult is recomputed on every call and never persisted. Amounts use
// each customer's price at computation time, so a price edit changes the
// bill of any month computed afterwards.
type BillingResult struct {
	Year           int             `json:"year"`
	Month          time.Month      `json:"month"`
	Customers      []CustomerBill  `json:"customers"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	TotalCustomers int             `json:"total_customers"`
}

// Period renders the billing month as "October 2026".
func (r BillingResult) Period() string {
	return fmt.Sprintf("%s %d", r.Month, r.Year)
}

// Empty reports that nothing was delivered in the month.
func (r BillingResult) Empty() bool {
	return len(r.Customers) == 0
}

// TotalLitres sums the litres of every customer in the result.
func (r BillingResult) TotalLitres() decimal.Decimal {
	total := decimal.Zero
	for _, bill := range r.Customers {
		total = total.Add(bill.TotalLitres)
	}
	return total
}

// Find returns the bill of customerID, if it has one this month.
func (r BillingResult) Find(customerID int64) (CustomerBill, bool) {
	for _, bill := range r.Customers {
		if bill.CustomerID == customerID {
			return bill, true
		}
	}
	return CustomerBill{}, false
}
