package ordering

import (
	"context"
	"errors"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/ordering"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles explicit customer registration and lookup.
// Orders may also register customers implicitly, see OrderService.
type CustomerService struct {
	customerRepo ordering.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo ordering.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create registers a customer. Unlike order placement, an explicit
// registration against a taken email is rejected rather than merged.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	_, err := s.customerRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	customer, err := ordering.NewCustomer(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
		}
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// GetByID retrieves a customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// List retrieves all customers
func (s *CustomerService) List(ctx context.Context) ([]*CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, nil
}

// Update renames a customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}
