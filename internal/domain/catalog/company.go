package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
)

// MaxNITLength is the maximum length of a company NIT
const MaxNITLength = 20

// Company represents a tenant business that owns catalog products.
// The NIT (tax identification number) is the natural key and is
// immutable once the company has been registered.
type Company struct {
	NIT       string    `gorm:"type:varchar(20);primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Address   string    `gorm:"type:varchar(300)"`
	Phone     string    `gorm:"type:varchar(30)"`
	Products  []Product `gorm:"foreignKey:CompanyNIT;references:NIT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company
func NewCompany(nit, name, address, phone string) (*Company, error) {
	if err := validateNIT(nit); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Company name cannot be empty")
	}

	now := time.Now()
	return &Company{
		NIT:       strings.TrimSpace(nit),
		Name:      name,
		Address:   address,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces the company's mutable fields. The NIT never changes.
func (c *Company) Update(name, address, phone string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Company name cannot be empty")
	}

	c.Name = name
	c.Address = address
	c.Phone = phone
	c.UpdatedAt = time.Now()
	return nil
}

func validateNIT(nit string) error {
	nit = strings.TrimSpace(nit)
	if nit == "" {
		return shared.NewDomainError("INVALID_INPUT", "Company NIT cannot be empty")
	}
	if len(nit) > MaxNITLength {
		return shared.NewDomainError("INVALID_INPUT", "Company NIT cannot exceed 20 characters")
	}
	return nil
}

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	// FindByNIT finds a company by its NIT
	FindByNIT(ctx context.Context, nit string) (*Company, error)

	// ExistsByNIT checks if a company with the given NIT is registered
	ExistsByNIT(ctx context.Context, nit string) (bool, error)

	// FindAll returns all registered companies
	FindAll(ctx context.Context) ([]Company, error)

	// Save creates or updates a company
	Save(ctx context.Context, company *Company) error

	// Delete removes a company and cascades to its products, their
	// prices and their category links. Categories themselves survive.
	Delete(ctx context.Context, nit string) error
}
