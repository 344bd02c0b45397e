package persistence

import (
	"context"
	"errors"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID with prices and categories
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Prices").
		Preload("Categories").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByCompany finds all products of a company with prices and categories
func (r *GormProductRepository) FindByCompany(ctx context.Context, companyNIT string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Prices").
		Preload("Categories").
		Where("company_nit = ?", companyNIT).
		Order("code ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ExistsByCode checks if a product code is taken within a company
func (r *GormProductRepository) ExistsByCode(ctx context.Context, companyNIT, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("company_nit = ? AND code = ?", companyNIT, code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a new product together with its price set and
// category links. Categories already exist; the many2many insert only
// adds the join rows.
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return translateSaveError(err)
	}
	return nil
}

// Update persists the product's fields and replaces its price set and
// category links. Everything happens in one transaction so readers
// never observe a partially swapped association set.
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&catalog.Product{}).
			Where("id = ?", product.ID).
			Updates(map[string]any{
				"name":        product.Name,
				"description": product.Description,
				"updated_at":  product.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if err := tx.Where("product_id = ?", product.ID).
			Delete(&catalog.Price{}).Error; err != nil {
			return err
		}
		if len(product.Prices) > 0 {
			if err := tx.Create(&product.Prices).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(product).
			Association("Categories").
			Replace(product.Categories); err != nil {
			return err
		}
		return nil
	})
}

// Delete removes a product, cascading to its prices and clearing its
// category links
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).
			Delete(&catalog.Price{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM product_categories WHERE product_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&catalog.Product{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
