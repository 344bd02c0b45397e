package ordering

import (
	"context"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/ordering"
)

// TransactionScope executes order placement atomically. The customer
// upsert, membership checks and the order insert either all commit or
// all roll back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to the
// running transaction. Catalog repositories are included because
// placing an order validates products against their owning company.
type TransactionalRepositories interface {
	CustomerRepo() ordering.CustomerRepository
	OrderRepo() ordering.OrderRepository
	ProductRepo() catalog.ProductRepository
	CompanyRepo() catalog.CompanyRepository
}

// NoOpTransactionScope runs the function without transaction
// boundaries. Used in tests where repositories are mocked.
type NoOpTransactionScope struct {
	customerRepo ordering.CustomerRepository
	orderRepo    ordering.OrderRepository
	productRepo  catalog.ProductRepository
	companyRepo  catalog.CompanyRepository
}

// NewNoOpTransactionScope creates a pass-through scope over the given repositories
func NewNoOpTransactionScope(
	customerRepo ordering.CustomerRepository,
	orderRepo ordering.OrderRepository,
	productRepo catalog.ProductRepository,
	companyRepo catalog.CompanyRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		companyRepo:  companyRepo,
	}
}

func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) CustomerRepo() ordering.CustomerRepository { return s.customerRepo }
func (s *NoOpTransactionScope) OrderRepo() ordering.OrderRepository       { return s.orderRepo }
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository    { return s.productRepo }
func (s *NoOpTransactionScope) CompanyRepo() catalog.CompanyRepository    { return s.companyRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
