package persistence

import (
	"context"
	"errors"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/ordering"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its items, their products and the customer
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Product").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByCompany finds all orders placed against a company, newest first
func (r *GormOrderRepository) FindByCompany(ctx context.Context, companyNIT string) ([]ordering.Order, error) {
	var orders []ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Product").
		Where("company_nit = ?", companyNIT).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Create persists a new order together with its full item set. The
// customer and product relations are navigation-only here, they are
// persisted through their own repositories.
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	if err := r.db.WithContext(ctx).
		Omit("Customer", "Items.Product").
		Create(order).Error; err != nil {
		return translateSaveError(err)
	}
	return nil
}

var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
