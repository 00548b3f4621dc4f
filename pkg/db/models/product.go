package models

import "time"

// Product stores both category_id and sub_category_id the way the admin
// tooling writes them; derived views resolve the category through the
// subcategory, which wins when the two drift.
type Product struct {
	ID                 int64          `gorm:"column:id;primaryKey;autoIncrement"`
	CategoryID         int64          `gorm:"column:category_id;not null;index"`
	SubCategoryID      int64          `gorm:"column:sub_category_id;not null;index"`
	ProductName        string         `gorm:"column:product_name;size:32;not null"`
	ProductPrice       int64          `gorm:"column:product_price;not null"`
	ProductDescription string         `gorm:"column:product_description;not null"`
	TypeStatus         bool           `gorm:"column:type_status;not null"`
	ArticleNumber      int64          `gorm:"column:article_number;not null;uniqueIndex"`
	ProductVideo       string         `gorm:"column:product_video"`
	CreateDate         time.Time      `gorm:"column:create_date;autoCreateTime"`
	SubCategory        *SubCategory   `gorm:"foreignKey:SubCategoryID"`
	Images             []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews            []Review       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
