package products

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/internal/translations"
	"github.com/aselbek/bazar-backend/pkg/db/models"
	pkgerrors "github.com/aselbek/bazar-backend/pkg/errors"
	"github.com/aselbek/bazar-backend/pkg/pagination"
)

// Service exposes the read-only product query surface.
type Service interface {
	List(ctx context.Context, params ListParams, locale string) (*ListResult, error)
	Get(ctx context.Context, id int64, locale string) (*Detail, error)
	ListEntriesBySubCategory(ctx context.Context, subCategoryID int64, locale string) ([]ListEntry, error)
}

type service struct {
	products      *Repository
	translations  *translations.Repository
	defaultLocale string
}

// ServiceParams bundles the dependencies required to build a products service.
type ServiceParams struct {
	ProductRepo      *Repository
	TranslationsRepo *translations.Repository
	DefaultLocale    string
}

// NewService constructs a products service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if params.TranslationsRepo == nil {
		return nil, fmt.Errorf("translations repository is required")
	}
	return &service{
		products:      params.ProductRepo,
		translations:  params.TranslationsRepo,
		defaultLocale: params.DefaultLocale,
	}, nil
}

func (s *service) List(ctx context.Context, params ListParams, locale string) (*ListResult, error) {
	records, images, count, err := s.products.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	entries, err := s.toEntries(ctx, records, images, locale)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Items:      entries,
		Pagination: pagination.NewPage(params.Page, count),
	}, nil
}

func (s *service) Get(ctx context.Context, id int64, locale string) (*Detail, error) {
	product, err := s.products.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return s.toDetail(ctx, product, locale)
}

// ListEntriesBySubCategory renders the product entries embedded in a
// subcategory detail document.
func (s *service) ListEntriesBySubCategory(ctx context.Context, subCategoryID int64, locale string) ([]ListEntry, error) {
	records, images, err := s.products.ListBySubCategory(ctx, subCategoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list subcategory products")
	}
	return s.toEntries(ctx, records, images, locale)
}

func (s *service) toEntries(ctx context.Context, records []listRecord, images map[int64][]string, locale string) ([]ListEntry, error) {
	localized := map[int64]translations.Fields{}
	if s.localizable(locale) {
		ids := make([]int64, 0, len(records))
		for _, record := range records {
			ids = append(ids, record.ID)
		}
		resolved, err := s.translations.Resolve(ctx, models.TranslationEntityProduct, ids, locale)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve translations")
		}
		localized = resolved
	}

	entries := make([]ListEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, ListEntry{
			ID:            record.ID,
			ProductName:   localized[record.ID].Value(models.TranslationFieldName, record.ProductName),
			ProductPrice:  record.ProductPrice,
			TypeStatus:    record.TypeStatus,
			ArticleNumber: record.ArticleNumber,
			AvgRating:     roundRatingFloat(record.AvgRating),
			ReviewCount:   record.ReviewCount,
			Images:        imageList(images[record.ID]),
		})
	}
	return entries, nil
}

func (s *service) toDetail(ctx context.Context, product *models.Product, locale string) (*Detail, error) {
	var productFields, subCategoryFields, categoryFields translations.Fields
	if s.localizable(locale) {
		var err error
		productFields, err = s.translations.ResolveOne(ctx, models.TranslationEntityProduct, product.ID, locale)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve translations")
		}
		if product.SubCategory != nil {
			subCategoryFields, err = s.translations.ResolveOne(ctx, models.TranslationEntitySubCategory, product.SubCategory.ID, locale)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve translations")
			}
			if product.SubCategory.Category != nil {
				categoryFields, err = s.translations.ResolveOne(ctx, models.TranslationEntityCategory, product.SubCategory.Category.ID, locale)
				if err != nil {
					return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve translations")
				}
			}
		}
	}

	detail := &Detail{
		ID:                 product.ID,
		ProductName:        productFields.Value(models.TranslationFieldName, product.ProductName),
		ProductPrice:       product.ProductPrice,
		ProductDescription: productFields.Value(models.TranslationFieldDescription, product.ProductDescription),
		TypeStatus:         product.TypeStatus,
		ArticleNumber:      product.ArticleNumber,
		ProductVideo:       product.ProductVideo,
		CreateDate:         product.CreateDate.Format(dateLayout),
		Images:             make([]string, 0, len(product.Images)),
		Reviews:            make([]ReviewView, 0, len(product.Reviews)),
	}

	// The category embedding resolves through the subcategory, which is
	// authoritative when the stored category_id drifts.
	if product.SubCategory != nil {
		detail.SubCategory = SubCategoryRef{
			ID:   product.SubCategory.ID,
			Name: subCategoryFields.Value(models.TranslationFieldName, product.SubCategory.SubcategoryName),
		}
		if category := product.SubCategory.Category; category != nil {
			detail.Category = CategoryRef{
				ID:    category.ID,
				Name:  categoryFields.Value(models.TranslationFieldName, category.CategoryName),
				Image: category.CategoryImage,
			}
		}
	}

	for _, image := range product.Images {
		detail.Images = append(detail.Images, image.ProductImage)
	}

	var ratingSum int64
	for _, review := range product.Reviews {
		ratingSum += int64(review.Rating)
		view := ReviewView{
			ID:         review.ID,
			Rating:     review.Rating,
			Comment:    review.Comment,
			CreateDate: review.CreateDate.Format(dateLayout),
		}
		if review.User != nil {
			view.User = ReviewUser{
				FirstName: review.User.FirstName,
				LastName:  review.User.LastName,
			}
		}
		detail.Reviews = append(detail.Reviews, view)
	}
	detail.ReviewCount = int64(len(product.Reviews))
	detail.AvgRating = roundRating(ratingSum, detail.ReviewCount)

	return detail, nil
}

func (s *service) localizable(locale string) bool {
	return locale != "" && locale != s.defaultLocale
}

func imageList(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
