package persistence

import (
	"context"
	"errors"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/ordering"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Customer, error) {
	var customer ordering.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByEmail finds a customer by its email
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*ordering.Customer, error) {
	var customer ordering.Customer
	if err := r.db.WithContext(ctx).First(&customer, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAll returns all customers ordered by name
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]ordering.Customer, error) {
	var customers []ordering.Customer
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Save persists a customer. The unique index on email turns concurrent
// registrations of the same address into shared.ErrAlreadyExists for
// the loser.
func (r *GormCustomerRepository) Save(ctx context.Context, customer *ordering.Customer) error {
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return translateSaveError(err)
	}
	return nil
}

var _ ordering.CustomerRepository = (*GormCustomerRepository)(nil)
