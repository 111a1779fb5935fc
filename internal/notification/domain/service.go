package domain

import (
	"context"

	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
)

// Notification is the ready-to-send bill message for one customer.
type Notification struct {
	CustomerID int64  `json:"customer_id"`
	Contact    string `json:"contact"`
	Message    string `json:"message"`
	// Link is empty when the customer has no contact.
	Link string `json:"link"`
}

// Outcome reports a dispatch attempt. Failures live here, not in an error.
type Outcome struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

type Service interface {
	Message(bill billingdomain.CustomerBill, result billingdomain.BillingResult) string
	NormalizeContact(contact string) string
	Link(bill billingdomain.CustomerBill, result billingdomain.BillingResult) string
	Build(bill billingdomain.CustomerBill, result billingdomain.BillingResult) Notification
	Send(ctx context.Context, bill billingdomain.CustomerBill, result billingdomain.BillingResult) Outcome
}
