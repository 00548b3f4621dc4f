package catalog

import (
	"github.com/aselbek/bazar-backend/internal/products"
)

// CategoryDTO is the category view used by both the list and the detail.
type CategoryDTO struct {
	ID            int64  `json:"id"`
	CategoryName  string `json:"category_name"`
	CategoryImage string `json:"category_image"`
}

// SubCategoryDTO is the subcategory list entry.
type SubCategoryDTO struct {
	ID              int64  `json:"id"`
	Category        int64  `json:"category"`
	SubcategoryName string `json:"subcategory_name"`
}

// SubCategoryDetailDTO embeds the subcategory's products as product-list
// entries.
type SubCategoryDetailDTO struct {
	SubCategoryDTO
	Products []products.ListEntry `json:"products"`
}
