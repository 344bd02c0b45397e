package catalog

import (
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCompanyRequest represents a request to register a new company
type CreateCompanyRequest struct {
	NIT     string `json:"nit" binding:"required,min=1,max=20"`
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"max=300"`
	Phone   string `json:"phone" binding:"max=30"`
}

// UpdateCompanyRequest represents a request to update a company's
// mutable fields. The NIT is taken from the URL and never changes.
type UpdateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"max=300"`
	Phone   string `json:"phone" binding:"max=30"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	NIT       string    `json:"nit"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCompanyResponse converts a domain company to its response form
func ToCompanyResponse(c *catalog.Company) *CompanyResponse {
	return &CompanyResponse{
		NIT:       c.NIT,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// PriceRequest represents one price entry on a product request
type PriceRequest struct {
	Currency string          `json:"currency" binding:"required,len=3"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	CompanyNIT  string         `json:"company_nit" binding:"required,min=1,max=20"`
	Code        string         `json:"code" binding:"required,min=1,max=50"`
	Name        string         `json:"name" binding:"required,min=1,max=200"`
	Description string         `json:"description" binding:"max=2000"`
	Prices      []PriceRequest `json:"prices" binding:"dive"`
	Categories  []string       `json:"categories" binding:"dive,min=1,max=100"`
}

// UpdateProductRequest represents a request to update a product. Code
// and owning company are immutable; the price and category sets are
// replaced wholesale.
type UpdateProductRequest struct {
	Name        string         `json:"name" binding:"required,min=1,max=200"`
	Description string         `json:"description" binding:"max=2000"`
	Prices      []PriceRequest `json:"prices" binding:"dive"`
	Categories  []string       `json:"categories" binding:"dive,min=1,max=100"`
}

// PriceResponse represents one price entry in API responses
type PriceResponse struct {
	ID       uuid.UUID       `json:"id"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProductResponse represents a product in API responses, always carrying
// its full price and category sets
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	CompanyNIT  string          `json:"company_nit"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Prices      []PriceResponse `json:"prices"`
	Categories  []string        `json:"categories"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to its response form
func ToProductResponse(p *catalog.Product) *ProductResponse {
	prices := make([]PriceResponse, len(p.Prices))
	for i, price := range p.Prices {
		prices[i] = PriceResponse{
			ID:       price.ID,
			Currency: price.Currency,
			Amount:   price.Amount,
		}
	}

	categories := make([]string, len(p.Categories))
	for i, category := range p.Categories {
		categories[i] = category.Name
	}

	return &ProductResponse{
		ID:          p.ID,
		CompanyNIT:  p.CompanyNIT,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Prices:      prices,
		Categories:  categories,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreateCategoryRequest represents a request to explicitly create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToCategoryResponse converts a domain category to its response form
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}
