package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
)

// Category is a shared, globally unique label that any number of
// products may reference. Categories are never cascade-deleted when a
// product or company is removed.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name cannot exceed 100 characters")
	}

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}

// CategoryRepository defines the interface for category persistence.
// Name uniqueness is backed by a database unique index so that two
// writers racing on the same name cannot produce duplicates.
type CategoryRepository interface {
	// FindByName finds a category by its exact, case-sensitive name
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindAll returns all categories
	FindAll(ctx context.Context) ([]Category, error)

	// Save persists a category. A name collision surfaces as
	// shared.ErrAlreadyExists.
	Save(ctx context.Context, category *Category) error
}
