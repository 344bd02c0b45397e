package persistence

import (
	"context"

	appordering "github.com/DavidGarzon9580/lite-thinking/internal/application/ordering"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/ordering"
	"gorm.io/gorm"
)

// GormOrderingTransactionScope implements the ordering TransactionScope
// using GORM transactions.
type GormOrderingTransactionScope struct {
	db *gorm.DB
}

// NewGormOrderingTransactionScope creates a new GormOrderingTransactionScope
func NewGormOrderingTransactionScope(db *gorm.DB) *GormOrderingTransactionScope {
	return &GormOrderingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. An
// error from the function rolls everything back.
func (s *GormOrderingTransactionScope) Execute(ctx context.Context, fn func(repos appordering.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormOrderingRepositories{tx: tx})
	})
}

// gormOrderingRepositories exposes the repositories order placement
// touches, bound to one transaction.
type gormOrderingRepositories struct {
	tx *gorm.DB
}

func (r *gormOrderingRepositories) CustomerRepo() ordering.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

func (r *gormOrderingRepositories) OrderRepo() ordering.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormOrderingRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormOrderingRepositories) CompanyRepo() catalog.CompanyRepository {
	return NewGormCompanyRepository(r.tx)
}

var _ appordering.TransactionScope = (*GormOrderingTransactionScope)(nil)
var _ appordering.TransactionalRepositories = (*gormOrderingRepositories)(nil)
