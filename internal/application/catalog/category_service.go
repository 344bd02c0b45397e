package catalog

import (
	"context"
	"errors"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
)

// CategoryService is the category registry: a get-or-create vocabulary
// of globally unique category names shared by all companies.
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create explicitly registers a new category and fails with
// ALREADY_EXISTS when the name is taken.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	_, err := s.categoryRepo.FindByName(ctx, req.Name)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// List returns all registered categories
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *ToCategoryResponse(&category)
	}
	return responses, nil
}

// Resolve returns the category registered under name, creating it first
// when it does not exist yet. Two writers racing on the same name are
// serialized by the unique index: the loser sees a duplicate-key error
// and retries the lookup once instead of surfacing a conflict.
func (s *CategoryService) Resolve(ctx context.Context, name string) (*catalog.Category, error) {
	return resolveCategory(ctx, s.categoryRepo, name)
}

func resolveCategory(ctx context.Context, repo catalog.CategoryRepository, name string) (*catalog.Category, error) {
	existing, err := repo.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	category, err := catalog.NewCategory(name)
	if err != nil {
		return nil, err
	}

	if err := repo.Save(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// Lost the race; the winner's row is there now.
			return repo.FindByName(ctx, name)
		}
		return nil, err
	}

	return category, nil
}
