package ordering

import (
	"context"
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a purchase event for one company and one customer. Both
// references are immutable, the creation timestamp is server-assigned,
// and the total is always derived from the items (never stored).
type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyNIT string    `gorm:"type:varchar(20);not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Customer   Customer
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order for the given company and customer
func NewOrder(companyNIT string, customerID uuid.UUID) *Order {
	return &Order{
		ID:         uuid.New(),
		CompanyNIT: companyNIT,
		CustomerID: customerID,
		CreatedAt:  time.Now(),
	}
}

// ReplaceItems installs the given set as the order's complete item list
func (o *Order) ReplaceItems(items []OrderItem) {
	for i := range items {
		items[i].OrderID = o.ID
	}
	o.Items = items
}

// Total returns the sum of quantity x unit price over all items. It is
// recomputed on every call so it can never drift from the items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// OrderItem is one line of an order: a product reference, a quantity and
// the unit price in effect when the order was placed. The unit price is
// a snapshot independent from the product's current price set, so later
// catalog changes never rewrite order history.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Product   catalog.Product
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates an order line for the given product
func NewOrderItem(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, shared.NewDomainError("INVALID_INPUT", "Item quantity must be positive")
	}
	if !unitPrice.IsPositive() {
		return OrderItem{}, shared.NewDomainError("INVALID_INPUT", "Item unit price must be positive")
	}

	return OrderItem{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

// Subtotal returns quantity x unit price for this line
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderRepository defines the interface for order persistence. Finders
// eager-load items, their products and the customer.
type OrderRepository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByCompany finds all orders placed against a company
	FindByCompany(ctx context.Context, companyNIT string) ([]Order, error)

	// Create persists a new order together with its full item set
	Create(ctx context.Context, order *Order) error
}
