package ordering

import (
	"context"
	"errors"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/ordering"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order placement and retrieval
type OrderService struct {
	orderRepo ordering.OrderRepository
	txScope   TransactionScope
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo ordering.OrderRepository, txScope TransactionScope) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		txScope:   txScope,
	}
}

// Create places an order for a company. The customer is resolved by
// email, created on first contact or renamed if the submitted name
// differs. Every line must reference a product owned by the target
// company; the submitted unit price is snapshotted on the line so the
// order is immune to later price changes.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	var created *ordering.Order

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.CompanyRepo().ExistsByNIT(ctx, req.CompanyNIT)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewDomainError("NOT_FOUND", "Company not found")
		}

		customer, err := resolveCustomer(ctx, repos.CustomerRepo(), req.CustomerEmail, req.CustomerName)
		if err != nil {
			return err
		}

		order := ordering.NewOrder(req.CompanyNIT, customer.ID)

		items := make([]ordering.OrderItem, 0, len(req.Items))
		for _, line := range req.Items {
			product, err := repos.ProductRepo().FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("NOT_FOUND", "Product "+line.ProductID.String()+" not found")
				}
				return err
			}
			if product.CompanyNIT != req.CompanyNIT {
				return shared.NewDomainError("INVALID_INPUT", "Product "+product.Code+" does not belong to the selected company")
			}

			item, err := ordering.NewOrderItem(line.ProductID, line.Quantity, line.UnitPrice)
			if err != nil {
				return err
			}
			item.Product = *product
			items = append(items, item)
		}
		order.ReplaceItems(items)
		order.Customer = *customer

		if err := repos.OrderRepo().Create(ctx, order); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToOrderResponse(created), nil
}

// GetByID retrieves an order with its lines and customer
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// ListByCompany retrieves all orders placed against a company
func (s *OrderService) ListByCompany(ctx context.Context, companyNIT string) ([]*OrderResponse, error) {
	orders, err := s.orderRepo.FindByCompany(ctx, companyNIT)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, nil
}

// resolveCustomer finds a customer by email, registering them on first
// contact. A differing name on an existing customer is treated as an
// update, most recent submission wins. A duplicate-key error on insert
// means another request registered the same email first, so the lookup
// is retried once.
func resolveCustomer(ctx context.Context, repo ordering.CustomerRepository, email, name string) (*ordering.Customer, error) {
	customer, err := repo.FindByEmail(ctx, email)
	if err == nil {
		if customer.Name != name {
			if err := customer.Rename(name); err != nil {
				return nil, err
			}
			if err := repo.Save(ctx, customer); err != nil {
				return nil, err
			}
		}
		return customer, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	customer, err = ordering.NewCustomer(name, email)
	if err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, customer); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// Lost the race; the winner's row is there now.
			return repo.FindByEmail(ctx, email)
		}
		return nil, err
	}
	return customer, nil
}
