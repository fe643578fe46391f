package catalog

import "github.com/shopspring/decimal"

// Service is one catalog entry (wash, iron, ...). Price is in whole currency
// units; orders copy it at creation time instead of referencing it live.
type Service struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CreateServiceRequest payload of creation.
// swagger:model CreateServiceRequest
type CreateServiceRequest struct {
	Name  string          `json:"name"  example:"Cuci Kering"`
	Price decimal.Decimal `json:"price" example:"15000"`
}

// UpdateServiceRequest payload of partial update.
// swagger:model UpdateServiceRequest
type UpdateServiceRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}
