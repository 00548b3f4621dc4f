package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/internal/products"
	"github.com/aselbek/bazar-backend/internal/translations"
	"github.com/aselbek/bazar-backend/pkg/db/models"
	pkgerrors "github.com/aselbek/bazar-backend/pkg/errors"
)

// Service exposes the unauthenticated catalog browsing operations.
type Service interface {
	ListCategories(ctx context.Context, locale string) ([]CategoryDTO, error)
	GetCategory(ctx context.Context, id int64, locale string) (*CategoryDTO, error)
	ListSubCategories(ctx context.Context, locale string) ([]SubCategoryDTO, error)
	GetSubCategory(ctx context.Context, id int64, locale string) (*SubCategoryDetailDTO, error)
}

type service struct {
	catalog       *Repository
	products      products.Service
	translations  *translations.Repository
	defaultLocale string
}

// ServiceParams bundles the dependencies required to build a catalog service.
type ServiceParams struct {
	CatalogRepo      *Repository
	ProductService   products.Service
	TranslationsRepo *translations.Repository
	DefaultLocale    string
}

// NewService constructs a catalog service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CatalogRepo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	if params.ProductService == nil {
		return nil, fmt.Errorf("product service is required")
	}
	if params.TranslationsRepo == nil {
		return nil, fmt.Errorf("translations repository is required")
	}
	return &service{
		catalog:       params.CatalogRepo,
		products:      params.ProductService,
		translations:  params.TranslationsRepo,
		defaultLocale: params.DefaultLocale,
	}, nil
}

func (s *service) ListCategories(ctx context.Context, locale string) ([]CategoryDTO, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}

	ids := make([]int64, 0, len(categories))
	for _, category := range categories {
		ids = append(ids, category.ID)
	}
	localized, err := s.resolve(ctx, models.TranslationEntityCategory, ids, locale)
	if err != nil {
		return nil, err
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, CategoryDTO{
			ID:            category.ID,
			CategoryName:  localized[category.ID].Value(models.TranslationFieldName, category.CategoryName),
			CategoryImage: category.CategoryImage,
		})
	}
	return dtos, nil
}

func (s *service) GetCategory(ctx context.Context, id int64, locale string) (*CategoryDTO, error) {
	category, err := s.catalog.FindCategory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}

	localized, err := s.resolve(ctx, models.TranslationEntityCategory, []int64{id}, locale)
	if err != nil {
		return nil, err
	}
	return &CategoryDTO{
		ID:            category.ID,
		CategoryName:  localized[id].Value(models.TranslationFieldName, category.CategoryName),
		CategoryImage: category.CategoryImage,
	}, nil
}

func (s *service) ListSubCategories(ctx context.Context, locale string) ([]SubCategoryDTO, error) {
	subCategories, err := s.catalog.ListSubCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list subcategories")
	}

	ids := make([]int64, 0, len(subCategories))
	for _, subCategory := range subCategories {
		ids = append(ids, subCategory.ID)
	}
	localized, err := s.resolve(ctx, models.TranslationEntitySubCategory, ids, locale)
	if err != nil {
		return nil, err
	}

	dtos := make([]SubCategoryDTO, 0, len(subCategories))
	for _, subCategory := range subCategories {
		dtos = append(dtos, SubCategoryDTO{
			ID:              subCategory.ID,
			Category:        subCategory.CategoryID,
			SubcategoryName: localized[subCategory.ID].Value(models.TranslationFieldName, subCategory.SubcategoryName),
		})
	}
	return dtos, nil
}

func (s *service) GetSubCategory(ctx context.Context, id int64, locale string) (*SubCategoryDetailDTO, error) {
	subCategory, err := s.catalog.FindSubCategory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load subcategory")
	}

	localized, err := s.resolve(ctx, models.TranslationEntitySubCategory, []int64{id}, locale)
	if err != nil {
		return nil, err
	}
	entries, err := s.products.ListEntriesBySubCategory(ctx, id, locale)
	if err != nil {
		return nil, err
	}

	return &SubCategoryDetailDTO{
		SubCategoryDTO: SubCategoryDTO{
			ID:              subCategory.ID,
			Category:        subCategory.CategoryID,
			SubcategoryName: localized[id].Value(models.TranslationFieldName, subCategory.SubcategoryName),
		},
		Products: entries,
	}, nil
}

func (s *service) resolve(ctx context.Context, entityType string, ids []int64, locale string) (map[int64]translations.Fields, error) {
	if locale == "" || locale == s.defaultLocale {
		return map[int64]translations.Fields{}, nil
	}
	resolved, err := s.translations.Resolve(ctx, entityType, ids, locale)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve translations")
	}
	return resolved, nil
}
