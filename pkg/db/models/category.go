package models

// Category groups subcategories under a localized display name.
type Category struct {
	ID            int64         `gorm:"column:id;primaryKey;autoIncrement"`
	CategoryName  string        `gorm:"column:category_name;size:32;not null;uniqueIndex"`
	CategoryImage string        `gorm:"column:category_image;not null"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
