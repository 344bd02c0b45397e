package ordering

import (
	"context"
	"strings"
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer is a purchaser identified uniquely by email. The email is the
// natural dedup key and never changes; the name follows whatever the
// most recent order supplied.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(name, email string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer name cannot be empty")
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer email is not valid")
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename updates the customer's name in place
func (c *Customer) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Customer name cannot be empty")
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// CustomerRepository defines the interface for customer persistence.
// Email uniqueness is backed by a database unique index.
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByEmail finds a customer by its email
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// FindAll returns all customers
	FindAll(ctx context.Context) ([]Customer, error)

	// Save persists a customer. An email collision surfaces as
	// shared.ErrAlreadyExists.
	Save(ctx context.Context, customer *Customer) error
}
