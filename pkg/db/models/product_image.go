package models

// ProductImage is a media reference attached to a product; many per product.
type ProductImage struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID    int64  `gorm:"column:product_id;not null;index"`
	ProductImage string `gorm:"column:product_image;not null"`
}
