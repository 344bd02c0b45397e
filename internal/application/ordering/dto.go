package ordering

import (
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest represents one requested order line. The unit price
// is supplied by the caller and snapshotted as-is; the engine does not
// re-derive it from the product's current price set.
type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateOrderRequest represents a request to place an order
type CreateOrderRequest struct {
	CompanyNIT    string             `json:"company_nit" binding:"required,min=1,max=20"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	CustomerName  string             `json:"customer_name" binding:"required,min=1,max=200"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemResponse represents one order line in API responses
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ToCustomerResponse converts a domain customer to its response form
func ToCustomerResponse(c *ordering.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

// OrderResponse represents an order in API responses. The total is
// recomputed from the items on every read, never stored.
type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	CompanyNIT string              `json:"company_nit"`
	Customer   CustomerResponse    `json:"customer"`
	Items      []OrderItemResponse `json:"items"`
	Total      decimal.Decimal     `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
}

// ToOrderResponse converts a domain order to its response form
func ToOrderResponse(o *ordering.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		}
	}

	return &OrderResponse{
		ID:         o.ID,
		CompanyNIT: o.CompanyNIT,
		Customer:   *ToCustomerResponse(&o.Customer),
		Items:      items,
		Total:      o.Total(),
		CreatedAt:  o.CreatedAt,
	}
}

// CreateCustomerRequest represents a request to explicitly register a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateCustomerRequest represents a request to rename a customer. The
// email is the immutable dedup key.
type UpdateCustomerRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}
