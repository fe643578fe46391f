package customer

// Customer is one laundry customer. Phone and address are optional.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CreateCustomerRequest payload of creation.
// swagger:model CreateCustomerRequest
type CreateCustomerRequest struct {
	Name    string `json:"name"    example:"Ana Pratiwi"`
	Phone   string `json:"phone"   example:"0812xxxxxx"`
	Address string `json:"address" example:"Jl. Melati 4"`
}

// UpdateCustomerRequest payload of partial update.
// swagger:model UpdateCustomerRequest
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
