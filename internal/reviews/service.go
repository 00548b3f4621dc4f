package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/pkg/db/models"
	pkgerrors "github.com/aselbek/bazar-backend/pkg/errors"
)

// Service exposes review creation and owner-only mutation.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateReviewRequest) (*ReviewDTO, error)
	Get(ctx context.Context, id int64) (*ReviewDTO, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, req UpdateReviewRequest) (*ReviewDTO, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
	ListByProduct(ctx context.Context, productID int64) ([]ReviewDTO, error)
}

type reviewRepository interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	FindByID(ctx context.Context, id int64) (*models.Review, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*models.Review, error)
	Delete(ctx context.Context, id int64) error
	ListByProduct(ctx context.Context, productID int64) ([]models.Review, error)
}

type productFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
}

type service struct {
	reviews  reviewRepository
	products productFinder
}

// ServiceParams bundles the dependencies required to build a reviews service.
type ServiceParams struct {
	ReviewRepo  reviewRepository
	ProductRepo productFinder
}

// NewService constructs a reviews service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ReviewRepo == nil {
		return nil, fmt.Errorf("review repository is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	return &service{
		reviews:  params.ReviewRepo,
		products: params.ProductRepo,
	}, nil
}

// Create validates the rating and comment, checks the product exists, and
// stores the review. Repeat reviews by the same user are allowed.
func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateReviewRequest) (*ReviewDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "comment is required")
	}
	if _, err := s.products.FindByID(ctx, req.Product); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	review, err := s.reviews.Create(ctx, &models.Review{
		UserID:    userID,
		ProductID: req.Product,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create review")
	}
	return FromModel(review), nil
}

func (s *service) Get(ctx context.Context, id int64) (*ReviewDTO, error) {
	review, err := s.loadReview(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(review), nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, id int64, req UpdateReviewRequest) (*ReviewDTO, error) {
	review, err := s.loadReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only the review author may modify it")
	}

	fields := map[string]any{}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
		}
		fields["rating"] = *req.Rating
	}
	if req.Comment != nil {
		if strings.TrimSpace(*req.Comment) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "comment cannot be empty")
		}
		fields["comment"] = *req.Comment
	}

	updated, err := s.reviews.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update review")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	review, err := s.loadReview(ctx, id)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "only the review author may delete it")
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete review")
	}
	return nil
}

func (s *service) ListByProduct(ctx context.Context, productID int64) ([]ReviewDTO, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	rows, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reviews")
	}
	dtos := make([]ReviewDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) loadReview(ctx context.Context, id int64) (*models.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load review")
	}
	return review, nil
}
