package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByNIT(ctx context.Context, nit string) (*catalog.Company, error) {
	args := m.Called(ctx, nit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Company), args.Error(1)
}

func (m *MockCompanyRepository) ExistsByNIT(ctx context.Context, nit string) (bool, error) {
	args := m.Called(ctx, nit)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context) ([]catalog.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *catalog.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, nit string) error {
	args := m.Called(ctx, nit)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCompany(ctx context.Context, companyNIT string) ([]catalog.Product, error) {
	args := m.Called(ctx, companyNIT)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, companyNIT, code string) (bool, error) {
	args := m.Called(ctx, companyNIT, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// Test helper functions
const testNIT = "900123456"

func newTestProductID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func createTestCompany() *catalog.Company {
	company, _ := catalog.NewCompany(testNIT, "Lite Thinking", "Cra 7 # 12-34", "+57 601 555 0100")
	return company
}

func createTestProduct() *catalog.Product {
	product, _ := catalog.NewProduct(testNIT, "PROD-001", "Test Product", "A product for testing")
	return product
}

func newProductService(
	companyRepo *MockCompanyRepository,
	productRepo *MockProductRepository,
	categoryRepo *MockCategoryRepository,
) *ProductService {
	txScope := NewNoOpTransactionScope(companyRepo, productRepo, categoryRepo)
	return NewProductService(productRepo, txScope)
}

// Tests for ProductService.Create
func TestProductService_Create_Success(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	req := CreateProductRequest{
		CompanyNIT:  testNIT,
		Code:        "NEW-001",
		Name:        "New Product",
		Description: "Fresh off the line",
	}

	mockCompanyRepo.On("ExistsByNIT", ctx, testNIT).Return(true, nil)
	mockProductRepo.On("ExistsByCode", ctx, testNIT, "NEW-001").Return(false, nil)
	mockProductRepo.On("Create", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "NEW-001", result.Code)
	assert.Equal(t, testNIT, result.CompanyNIT)
	assert.Equal(t, "New Product", result.Name)
	assert.Empty(t, result.Prices)
	assert.Empty(t, result.Categories)
	mockCompanyRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Create_WithPricesAndCategories(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	req := CreateProductRequest{
		CompanyNIT: testNIT,
		Code:       "FULL-001",
		Name:       "Full Product",
		Prices: []PriceRequest{
			{Currency: "usd", Amount: decimal.NewFromFloat(19.99)},
			{Currency: "COP", Amount: decimal.NewFromInt(80000)},
		},
		Categories: []string{"Electronics", "Office"},
	}

	electronics, _ := catalog.NewCategory("Electronics")
	mockCompanyRepo.On("ExistsByNIT", ctx, testNIT).Return(true, nil)
	mockProductRepo.On("ExistsByCode", ctx, testNIT, "FULL-001").Return(false, nil)
	mockCategoryRepo.On("FindByName", ctx, "Electronics").Return(electronics, nil)
	mockCategoryRepo.On("FindByName", ctx, "Office").Return(nil, shared.ErrNotFound)
	mockCategoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)
	mockProductRepo.On("Create", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result.Prices, 2)
	// Currency codes are normalized to uppercase on the way in.
	assert.Equal(t, "USD", result.Prices[0].Currency)
	assert.True(t, decimal.NewFromFloat(19.99).Equal(result.Prices[0].Amount))
	assert.Equal(t, []string{"Electronics", "Office"}, result.Categories)
	mockCategoryRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Create_CompanyNotFound(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	req := CreateProductRequest{CompanyNIT: "999999999", Code: "NEW-001", Name: "New Product"}

	mockCompanyRepo.On("ExistsByNIT", ctx, "999999999").Return(false, nil)

	result, err := service.Create(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockProductRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_Create_DuplicateCode(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	req := CreateProductRequest{CompanyNIT: testNIT, Code: "PROD-001", Name: "Duplicate"}

	mockCompanyRepo.On("ExistsByNIT", ctx, testNIT).Return(true, nil)
	mockProductRepo.On("ExistsByCode", ctx, testNIT, "PROD-001").Return(true, nil)

	result, err := service.Create(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	assert.Equal(t, "Product code already exists for this company", domainErr.Message)
	mockProductRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_Create_InvalidPrice(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	req := CreateProductRequest{
		CompanyNIT: testNIT,
		Code:       "NEW-001",
		Name:       "New Product",
		Prices:     []PriceRequest{{Currency: "USD", Amount: decimal.Zero}},
	}

	mockCompanyRepo.On("ExistsByNIT", ctx, testNIT).Return(true, nil)
	mockProductRepo.On("ExistsByCode", ctx, testNIT, "NEW-001").Return(false, nil)

	result, err := service.Create(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	mockProductRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_GetByID_Success(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	product := createTestProduct()

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	result, err := service.GetByID(ctx, product.ID)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, product.ID, result.ID)
	assert.Equal(t, "PROD-001", result.Code)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	id := newTestProductID()

	mockProductRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	result, err := service.GetByID(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductService_ListByCompany_Success(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	first := createTestProduct()
	second, _ := catalog.NewProduct(testNIT, "PROD-002", "Second Product", "")

	mockProductRepo.On("FindByCompany", ctx, testNIT).Return([]catalog.Product{*first, *second}, nil)

	result, err := service.ListByCompany(ctx, testNIT)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "PROD-001", result[0].Code)
	assert.Equal(t, "PROD-002", result[1].Code)
}

func TestProductService_Update_Success(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	product := createTestProduct()
	req := UpdateProductRequest{
		Name:        "Renamed Product",
		Description: "Updated description",
		Prices:      []PriceRequest{{Currency: "EUR", Amount: decimal.NewFromInt(25)}},
	}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockProductRepo.On("Update", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := service.Update(ctx, product.ID, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "Renamed Product", result.Name)
	assert.Equal(t, "PROD-001", result.Code)
	assert.Len(t, result.Prices, 1)
	assert.Equal(t, "EUR", result.Prices[0].Currency)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Update_NotFound(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	id := newTestProductID()

	mockProductRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	result, err := service.Update(ctx, id, UpdateProductRequest{Name: "Renamed"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockProductRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_Delete_Success(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	product := createTestProduct()

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockProductRepo.On("Delete", ctx, product.ID).Return(nil)

	err := service.Delete(ctx, product.ID)

	assert.NoError(t, err)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockCompanyRepo, mockProductRepo, mockCategoryRepo)

	ctx := context.Background()
	id := newTestProductID()

	mockProductRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	err := service.Delete(ctx, id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockProductRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBuildPrices_RejectsBadCurrency(t *testing.T) {
	_, err := buildPrices([]PriceRequest{{Currency: "US", Amount: decimal.NewFromInt(10)}})

	var domainErr *shared.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestResolveCategories_CollapsesDuplicateNames(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	ctx := context.Background()

	electronics, _ := catalog.NewCategory("Electronics")
	mockCategoryRepo.On("FindByName", ctx, "Electronics").Return(electronics, nil).Once()

	categories, err := resolveCategories(ctx, mockCategoryRepo, []string{"Electronics", "Electronics"})

	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	mockCategoryRepo.AssertExpectations(t)
}

func TestToProductResponse(t *testing.T) {
	product := createTestProduct()
	price, _ := catalog.NewPrice("USD", decimal.NewFromFloat(12.5))
	product.ReplacePrices([]catalog.Price{price})
	electronics, _ := catalog.NewCategory("Electronics")
	product.ReplaceCategories([]catalog.Category{*electronics})

	resp := ToProductResponse(product)

	assert.Equal(t, product.ID, resp.ID)
	assert.Equal(t, testNIT, resp.CompanyNIT)
	assert.Len(t, resp.Prices, 1)
	assert.Equal(t, product.ID, product.Prices[0].ProductID)
	assert.Equal(t, []string{"Electronics"}, resp.Categories)
}
