package catalog

import (
	"context"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations. Mutations
// run inside a TransactionScope so that a product and its complete
// price/category sets change atomically.
type ProductService struct {
	productRepo catalog.ProductRepository
	txScope     TransactionScope
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, txScope TransactionScope) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		txScope:     txScope,
	}
}

// Create creates a new product under an existing company. The product
// code must be unused within that company; category names are resolved
// through the registry, creating missing ones on the fly.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	var product *catalog.Product

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.CompanyRepo().ExistsByNIT(ctx, req.CompanyNIT)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewDomainError("NOT_FOUND", "Company not found")
		}

		taken, err := repos.ProductRepo().ExistsByCode(ctx, req.CompanyNIT, req.Code)
		if err != nil {
			return err
		}
		if taken {
			return shared.NewDomainError("ALREADY_EXISTS", "Product code already exists for this company")
		}

		product, err = catalog.NewProduct(req.CompanyNIT, req.Code, req.Name, req.Description)
		if err != nil {
			return err
		}

		prices, err := buildPrices(req.Prices)
		if err != nil {
			return err
		}
		product.ReplacePrices(prices)

		categories, err := resolveCategories(ctx, repos.CategoryRepo(), req.Categories)
		if err != nil {
			return err
		}
		product.ReplaceCategories(categories)

		return repos.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// GetByID retrieves a product with its full price and category sets
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// ListByCompany retrieves all products of a company, each with its full
// price and category sets
func (s *ProductService) ListByCompany(ctx context.Context, companyNIT string) ([]ProductResponse, error) {
	products, err := s.productRepo.FindByCompany(ctx, companyNIT)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *ToProductResponse(&product)
	}
	return responses, nil
}

// Update replaces a product's name and description and swaps its whole
// price and category sets. Code and owning company are immutable, so
// code uniqueness is not re-checked.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	var product *catalog.Product

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		product, err = repos.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := product.Update(req.Name, req.Description); err != nil {
			return err
		}

		prices, err := buildPrices(req.Prices)
		if err != nil {
			return err
		}
		product.ReplacePrices(prices)

		categories, err := resolveCategories(ctx, repos.CategoryRepo(), req.Categories)
		if err != nil {
			return err
		}
		product.ReplaceCategories(categories)

		return repos.ProductRepo().Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Delete removes a product, cascading to its prices and clearing its
// category links
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// buildPrices validates and converts the requested price entries
func buildPrices(reqs []PriceRequest) ([]catalog.Price, error) {
	prices := make([]catalog.Price, 0, len(reqs))
	for _, r := range reqs {
		price, err := catalog.NewPrice(r.Currency, r.Amount)
		if err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}
	return prices, nil
}

// resolveCategories maps each requested name to the registered category,
// creating missing ones through the registry's get-or-create path.
// Duplicate names in the request collapse to a single link.
func resolveCategories(ctx context.Context, repo catalog.CategoryRepository, names []string) ([]catalog.Category, error) {
	categories := make([]catalog.Category, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		category, err := resolveCategory(ctx, repo, name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, nil
}
