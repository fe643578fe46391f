package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/laundryops/backoffice/internal/customer"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusPickedUp   Status = "picked-up"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusPickedUp:
		return true
	}
	return false
}

type Payment string

const (
	PaymentUnpaid  Payment = "unpaid"
	PaymentPartial Payment = "partial"
	PaymentPaid    Payment = "paid"
)

func (p Payment) Valid() bool {
	switch p {
	case PaymentUnpaid, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}

// Order is one laundry order. Customer is resolved from customer_id on every
// read; Service and Price are copied from the catalog at creation time and do
// not change when the catalog does.
type Order struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	Customer   customer.Customer `json:"customer"`
	Service    string            `json:"service"`
	Weight     decimal.Decimal   `json:"weight"` // kilograms
	Price      decimal.Decimal   `json:"price"`
	Status     Status            `json:"status"`
	Payment    Payment           `json:"payment"`
	CreatedAt  time.Time         `json:"created_at"`
}
