package catalog

import (
	"context"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
)

// TransactionScope provides transactional access to catalog repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or
// roll back atomically. This is what makes a product's price-set and
// category-set replacement all-or-nothing.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the catalog repositories
// within a transaction. All repositories returned share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// CompanyRepo returns the company repository scoped to the current transaction
	CompanyRepo() catalog.CompanyRepository
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// CategoryRepo returns the category repository scoped to the current transaction
	CategoryRepo() catalog.CategoryRepository
}

// NoOpTransactionScope runs the scoped function against plain
// repositories without a real transaction. Useful in tests.
type NoOpTransactionScope struct {
	companyRepo  catalog.CompanyRepository
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	companyRepo catalog.CompanyRepository,
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		companyRepo:  companyRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CompanyRepo returns the company repository.
func (s *NoOpTransactionScope) CompanyRepo() catalog.CompanyRepository {
	return s.companyRepo
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// CategoryRepo returns the category repository.
func (s *NoOpTransactionScope) CategoryRepo() catalog.CategoryRepository {
	return s.categoryRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
