package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/pkg/db/models"
)

// Repository encapsulates category and subcategory persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListCategories returns all categories in stable id order.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindCategory loads a single category by id.
func (r *Repository) FindCategory(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListSubCategories returns all subcategories in stable id order.
func (r *Repository) ListSubCategories(ctx context.Context) ([]models.SubCategory, error) {
	var subCategories []models.SubCategory
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&subCategories).Error; err != nil {
		return nil, err
	}
	return subCategories, nil
}

// FindSubCategory loads a single subcategory by id.
func (r *Repository) FindSubCategory(ctx context.Context, id int64) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	if err := r.db.WithContext(ctx).First(&subCategory, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &subCategory, nil
}
