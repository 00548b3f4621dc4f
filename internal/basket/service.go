package basket

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/internal/products"
	"github.com/aselbek/bazar-backend/pkg/db"
	"github.com/aselbek/bazar-backend/pkg/db/models"
	pkgerrors "github.com/aselbek/bazar-backend/pkg/errors"
)

// Service exposes the authenticated basket operations.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*BasketDTO, error)
	// AddItem applies the replace-quantity policy: posting a product already
	// in the basket sets its line to the requested quantity, and quantity 0
	// removes the line (returning a nil item).
	AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*BasketItemDTO, error)
	UpdateItem(ctx context.Context, userID uuid.UUID, itemID int64, req UpdateItemRequest) (*BasketItemDTO, error)
	DeleteItem(ctx context.Context, userID uuid.UUID, itemID int64) error
}

type service struct {
	baskets  *Repository
	products *products.Repository
}

// ServiceParams bundles the dependencies required to build a basket service.
type ServiceParams struct {
	BasketRepo  *Repository
	ProductRepo *products.Repository
}

// NewService constructs a basket service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.BasketRepo == nil {
		return nil, fmt.Errorf("basket repository is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	return &service{
		baskets:  params.BasketRepo,
		products: params.ProductRepo,
	}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*BasketDTO, error) {
	basket, err := s.loadBasket(ctx, userID)
	if err != nil {
		return nil, err
	}
	return fromModel(basket), nil
}

func (s *service) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*BasketItemDTO, error) {
	if req.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}

	basket, err := s.loadBasket(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Quantity == 0 {
		if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
		}
		if err := s.baskets.DeleteItemByProduct(ctx, basket.ID, req.ProductID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove basket item")
		}
		return nil, nil
	}

	// the product_id foreign key is the existence check here, so a product
	// deleted at any point before the insert still reads as not found
	item, err := s.baskets.UpsertItem(ctx, basket.ID, req.ProductID, req.Quantity)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert basket item")
	}
	return itemFromModel(item), nil
}

func (s *service) UpdateItem(ctx context.Context, userID uuid.UUID, itemID int64, req UpdateItemRequest) (*BasketItemDTO, error) {
	if req.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Quantity == 0 {
		if err := s.baskets.DeleteItem(ctx, item.ID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove basket item")
		}
		return nil, nil
	}

	updated, err := s.baskets.UpdateItemQuantity(ctx, item.ID, req.Quantity)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update basket item")
	}
	return itemFromModel(updated), nil
}

func (s *service) DeleteItem(ctx context.Context, userID uuid.UUID, itemID int64) error {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if err := s.baskets.DeleteItem(ctx, item.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete basket item")
	}
	return nil
}

func (s *service) loadBasket(ctx context.Context, userID uuid.UUID) (*models.Basket, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	basket, err := s.baskets.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load basket")
	}
	return basket, nil
}

func (s *service) ownedItem(ctx context.Context, userID uuid.UUID, itemID int64) (*models.BasketItem, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	item, err := s.baskets.FindItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "basket item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load basket item")
	}
	owner, err := s.baskets.FindBasketByID(ctx, item.BasketID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load basket")
	}
	if owner.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "basket item belongs to another user")
	}
	return item, nil
}
