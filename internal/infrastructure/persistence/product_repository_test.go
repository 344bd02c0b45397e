package persistence

import (
	"context"
	"testing"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustCreateCategory(t *testing.T, db *gorm.DB, name string) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, NewGormCategoryRepository(db).Save(context.Background(), category))
	return category
}

func TestProductRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	company := mustCreateCompany(t, db, "900123456", "Lite Thinking")
	electronics := mustCreateCategory(t, db, "Electronics")

	product, err := catalog.NewProduct(company.NIT, "PROD-001", "Laptop", "Portátil de 14 pulgadas")
	require.NoError(t, err)
	usd, err := catalog.NewPrice("USD", decimal.NewFromFloat(1299.99))
	require.NoError(t, err)
	cop, err := catalog.NewPrice("COP", decimal.NewFromInt(5200000))
	require.NoError(t, err)
	product.ReplacePrices([]catalog.Price{usd, cop})
	product.ReplaceCategories([]catalog.Category{*electronics})

	require.NoError(t, repo.Create(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", found.Code)
	assert.Len(t, found.Prices, 2)
	require.Len(t, found.Categories, 1)
	assert.Equal(t, "Electronics", found.Categories[0].Name)
}

func TestProductRepository_Create_DuplicateCodeInCompany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	company := mustCreateCompany(t, db, "900123456", "Lite Thinking")

	first, err := catalog.NewProduct(company.NIT, "PROD-001", "Laptop", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	duplicate, err := catalog.NewProduct(company.NIT, "PROD-001", "Another Laptop", "")
	require.NoError(t, err)
	err = repo.Create(ctx, duplicate)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestProductRepository_Create_SameCodeDifferentCompany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	first := mustCreateCompany(t, db, "900123456", "Lite Thinking")
	second := mustCreateCompany(t, db, "800765432", "Acme Ltda")

	// Codes are only unique within a company.
	a, err := catalog.NewProduct(first.NIT, "PROD-001", "Laptop", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, a))

	b, err := catalog.NewProduct(second.NIT, "PROD-001", "Chair", "")
	require.NoError(t, err)
	assert.NoError(t, repo.Create(ctx, b))
}

func TestProductRepository_ExistsByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	company := mustCreateCompany(t, db, "900123456", "Lite Thinking")
	product, err := catalog.NewProduct(company.NIT, "PROD-001", "Laptop", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, product))

	taken, err := repo.ExistsByCode(ctx, company.NIT, "PROD-001")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByCode(ctx, company.NIT, "PROD-999")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsByCode(ctx, "800765432", "PROD-001")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestProductRepository_FindByCompany_OrderedByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	company := mustCreateCompany(t, db, "900123456", "Lite Thinking")

	second, err := catalog.NewProduct(company.NIT, "PROD-002", "Monitor", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, second))
	first, err := catalog.NewProduct(company.NIT, "PROD-001", "Laptop", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	products, err := repo.FindByCompany(ctx, company.NIT)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "PROD-001", products[0].Code)
	assert.Equal(t, "PROD-002", products[1].Code)
}

func TestProductRepository_Update_ReplacesAssociations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	company := mustCreateCompany(t, db, "900123456", "Lite Thinking")
	electronics := mustCreateCategory(t, db, "Electronics")
	office := mustCreateCategory(t, db, "Office")

	product, err := catalog.NewProduct(company.NIT, "PROD-001", "Laptop", "")
	require.NoError(t, err)
	usd, err := catalog.NewPrice("USD", decimal.NewFromInt(100))
	require.NoError(t, err)
	product.ReplacePrices([]catalog.Price{usd})
	product.ReplaceCategories([]catalog.Category{*electronics})
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, product.Update("Laptop Pro 14", "Renewed model"))
	eur, err := catalog.NewPrice("EUR", decimal.NewFromInt(90))
	require.NoError(t, err)
	cop, err := catalog.NewPrice("COP", decimal.NewFromInt(400000))
	require.NoError(t, err)
	product.ReplacePrices([]catalog.Price{eur, cop})
	product.ReplaceCategories([]catalog.Category{*office})

	require.NoError(t, repo.Update(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro 14", found.Name)
	assert.Equal(t, "Renewed model", found.Description)
	require.Len(t, found.Prices, 2)
	currencies := []string{found.Prices[0].Currency, found.Prices[1].Currency}
	assert.ElementsMatch(t, []string{"EUR", "COP"}, currencies)
	require.Len(t, found.Categories, 1)
	assert.Equal(t, "Office", found.Categories[0].Name)
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)

	ghost, err := catalog.NewProduct("900123456", "GHOST-001", "Ghost", "")
	require.NoError(t, err)

	err = repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	company := mustCreateCompany(t, db, "900123456", "Lite Thinking")
	electronics := mustCreateCategory(t, db, "Electronics")

	product, err := catalog.NewProduct(company.NIT, "PROD-001", "Laptop", "")
	require.NoError(t, err)
	usd, err := catalog.NewPrice("USD", decimal.NewFromInt(100))
	require.NoError(t, err)
	product.ReplacePrices([]catalog.Price{usd})
	product.ReplaceCategories([]catalog.Category{*electronics})
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err = repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var priceCount int64
	require.NoError(t, db.Model(&catalog.Price{}).Where("product_id = ?", product.ID).Count(&priceCount).Error)
	assert.Zero(t, priceCount)

	// The category itself stays, only the link goes.
	_, err = NewGormCategoryRepository(db).FindByName(ctx, "Electronics")
	assert.NoError(t, err)
}

func TestProductRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
