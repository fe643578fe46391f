package order

import "github.com/shopspring/decimal"

// CreateOrderRequest payload of order creation. Price is optional: when it is
// omitted the handler copies the catalog price of the selected service.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerID int64            `json:"customer_id" example:"3"`
	Service    string           `json:"service"     example:"Cuci Kering"`
	Weight     decimal.Decimal  `json:"weight"      example:"2.5"`
	Price      *decimal.Decimal `json:"price"`
	Status     Status           `json:"status"`
	Payment    Payment          `json:"payment"`
}

// UpdateOrderRequest payload of partial update. Nil fields are left alone;
// an edited price is never re-derived from the catalog.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	CustomerID *int64           `json:"customer_id"`
	Service    *string          `json:"service"`
	Weight     *decimal.Decimal `json:"weight"`
	Price      *decimal.Decimal `json:"price"`
	Status     *Status          `json:"status"`
	Payment    *Payment         `json:"payment"`
}
