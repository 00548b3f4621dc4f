package basket

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/pkg/db/models"
)

// Repository encapsulates basket persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a basket repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate returns the user's basket, creating it on first access. The
// insert races safely on the unique user_id index: a concurrent winner's row
// is simply read back.
func (r *Repository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Basket, error) {
	if userID == uuid.Nil {
		return nil, gorm.ErrInvalidValue
	}
	err := r.db.WithContext(ctx).
		Exec(`INSERT INTO baskets (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`, userID).
		Error
	if err != nil {
		return nil, err
	}
	return r.findByUser(ctx, userID)
}

func (r *Repository) findByUser(ctx context.Context, userID uuid.UUID) (*models.Basket, error) {
	var basket models.Basket
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Items.Product").
		First(&basket, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &basket, nil
}

// UpsertItem inserts a line or replaces the quantity of the existing line for
// the same product, atomically on the (basket_id, product_id) unique index.
func (r *Repository) UpsertItem(ctx context.Context, basketID, productID int64, quantity int) (*models.BasketItem, error) {
	err := r.db.WithContext(ctx).
		Exec(`INSERT INTO basket_items (basket_id, product_id, quantity) VALUES (?, ?, ?)
ON CONFLICT (basket_id, product_id) DO UPDATE SET quantity = excluded.quantity`,
			basketID, productID, quantity).
		Error
	if err != nil {
		return nil, err
	}

	var item models.BasketItem
	err = r.db.WithContext(ctx).
		Preload("Product").
		First(&item, "basket_id = ? AND product_id = ?", basketID, productID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItem loads one basket line with its product.
func (r *Repository) FindItem(ctx context.Context, itemID int64) (*models.BasketItem, error) {
	var item models.BasketItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&item, "id = ?", itemID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindBasketByID loads the bare basket row.
func (r *Repository) FindBasketByID(ctx context.Context, basketID int64) (*models.Basket, error) {
	var basket models.Basket
	if err := r.db.WithContext(ctx).First(&basket, "id = ?", basketID).Error; err != nil {
		return nil, err
	}
	return &basket, nil
}

// UpdateItemQuantity sets the line quantity and returns the fresh row.
func (r *Repository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*models.BasketItem, error) {
	err := r.db.WithContext(ctx).
		Model(&models.BasketItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
	if err != nil {
		return nil, err
	}
	return r.FindItem(ctx, itemID)
}

// DeleteItem removes one basket line.
func (r *Repository) DeleteItem(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).Delete(&models.BasketItem{}, "id = ?", itemID).Error
}

// DeleteItemByProduct removes the line for a product if present.
func (r *Repository) DeleteItemByProduct(ctx context.Context, basketID, productID int64) error {
	return r.db.WithContext(ctx).
		Delete(&models.BasketItem{}, "basket_id = ? AND product_id = ?", basketID, productID).
		Error
}
