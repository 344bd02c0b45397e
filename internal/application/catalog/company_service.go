package catalog

import (
	"context"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
)

// CompanyService handles company-related business operations
type CompanyService struct {
	companyRepo catalog.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo catalog.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Create registers a new company
func (s *CompanyService) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	exists, err := s.companyRepo.ExistsByNIT(ctx, req.NIT)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Company with this NIT already exists")
	}

	company, err := catalog.NewCompany(req.NIT, req.Name, req.Address, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	return ToCompanyResponse(company), nil
}

// GetByNIT retrieves a company by its NIT
func (s *CompanyService) GetByNIT(ctx context.Context, nit string) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// List retrieves all registered companies
func (s *CompanyService) List(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CompanyResponse, len(companies))
	for i, company := range companies {
		responses[i] = *ToCompanyResponse(&company)
	}
	return responses, nil
}

// Update replaces a company's mutable fields
func (s *CompanyService) Update(ctx context.Context, nit string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}

	if err := company.Update(req.Name, req.Address, req.Phone); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	return ToCompanyResponse(company), nil
}

// Delete removes a company, cascading to its products and their prices
// and category links. Categories survive as shared vocabulary.
func (s *CompanyService) Delete(ctx context.Context, nit string) error {
	exists, err := s.companyRepo.ExistsByNIT(ctx, nit)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}

	return s.companyRepo.Delete(ctx, nit)
}
