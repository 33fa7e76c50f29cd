package dto

// CreateOrderDTO is the POST /api/orders payload. Items are accepted as
// opaque maps and may be empty; only the customer fields are validated.
type CreateOrderDTO struct {
	Items           []map[string]any `json:"items"`
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerEmail   string           `json:"customer_email" binding:"required,email"`
	CustomerAddress string           `json:"customer_address" binding:"required"`
	Note            string           `json:"note"`
}
