package persistence

import (
	"context"
	"errors"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByNIT finds a company by its NIT
func (r *GormCompanyRepository) FindByNIT(ctx context.Context, nit string) (*catalog.Company, error) {
	var company catalog.Company
	if err := r.db.WithContext(ctx).First(&company, "nit = ?", nit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// ExistsByNIT checks if a company with the given NIT is registered
func (r *GormCompanyRepository) ExistsByNIT(ctx context.Context, nit string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Company{}).
		Where("nit = ?", nit).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns all registered companies ordered by name
func (r *GormCompanyRepository) FindAll(ctx context.Context) ([]catalog.Company, error) {
	var companies []catalog.Company
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *catalog.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return translateSaveError(err)
	}
	return nil
}

// Delete removes a company and everything hanging off it. Prices and
// category links go with the products; categories themselves survive,
// they are shared across companies.
func (r *GormCompanyRepository) Delete(ctx context.Context, nit string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []string
		if err := tx.Model(&catalog.Product{}).
			Where("company_nit = ?", nit).
			Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).
				Delete(&catalog.Price{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM product_categories WHERE product_id IN ?", productIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("company_nit = ?", nit).
				Delete(&catalog.Product{}).Error; err != nil {
				return err
			}
		}

		result := tx.Where("nit = ?", nit).Delete(&catalog.Company{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

var _ catalog.CompanyRepository = (*GormCompanyRepository)(nil)
