package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable catalog item belonging to exactly one
// company. The code is unique within the owning company, not globally.
// Prices are owned children replaced wholesale on update; categories are
// shared labels linked through the product_categories join table.
type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code        string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_company_code,priority:2"`
	CompanyNIT  string     `gorm:"type:varchar(20);not null;index;uniqueIndex:idx_product_company_code,priority:1"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	Prices      []Price    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Categories  []Category `gorm:"many2many:product_categories"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product under the given company
func NewProduct(companyNIT, code, name, description string) (*Product, error) {
	if strings.TrimSpace(code) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product code cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}

	now := time.Now()
	return &Product{
		ID:          uuid.New(),
		Code:        strings.TrimSpace(code),
		CompanyNIT:  companyNIT,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update replaces the product's mutable attributes. Code and owning
// company are immutable after creation.
func (p *Product) Update(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	return nil
}

// ReplacePrices installs the given set as the product's complete price
// list. Prices have no lifecycle outside their product.
func (p *Product) ReplacePrices(prices []Price) {
	for i := range prices {
		prices[i].ProductID = p.ID
	}
	p.Prices = prices
	p.UpdatedAt = time.Now()
}

// ReplaceCategories installs the given set as the product's complete
// category list.
func (p *Product) ReplaceCategories(categories []Category) {
	p.Categories = categories
	p.UpdatedAt = time.Now()
}

// Price is a (currency, amount) pair attached to a product. A product
// commonly holds one price per currency, but duplicates are tolerated.
type Price struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Currency  string          `gorm:"type:char(3);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (Price) TableName() string {
	return "product_prices"
}

// NewPrice creates a price after validating the currency code shape and
// that the amount is strictly positive.
func NewPrice(currency string, amount decimal.Decimal) (Price, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Price{}, shared.NewDomainError("INVALID_INPUT", "Currency must be a 3-letter ISO 4217 code")
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return Price{}, shared.NewDomainError("INVALID_INPUT", "Currency must be a 3-letter ISO 4217 code")
		}
	}
	if !amount.IsPositive() {
		return Price{}, shared.NewDomainError("INVALID_INPUT", "Price amount must be positive")
	}

	return Price{
		ID:       uuid.New(),
		Currency: currency,
		Amount:   amount,
	}, nil
}

// ProductRepository defines the interface for product persistence.
// Finders always eager-load prices and categories so callers never
// observe a partially loaded product.
type ProductRepository interface {
	// FindByID finds a product by its ID with prices and categories
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCompany finds all products of a company with prices and categories
	FindByCompany(ctx context.Context, companyNIT string) ([]Product, error)

	// ExistsByCode checks if a product code is taken within a company
	ExistsByCode(ctx context.Context, companyNIT, code string) (bool, error)

	// Create persists a new product together with its price set and
	// category links
	Create(ctx context.Context, product *Product) error

	// Update persists the product's fields and atomically replaces its
	// price set and category links. Either all associations are swapped
	// or none are.
	Update(ctx context.Context, product *Product) error

	// Delete removes a product, cascading to its prices and clearing
	// its category links
	Delete(ctx context.Context, id uuid.UUID) error
}
