package models

// BasketItem is one product line in a basket. The unique index on
// (basket_id, product_id) backs the replace-quantity upsert.
type BasketItem struct {
	ID        int64    `gorm:"column:id;primaryKey;autoIncrement"`
	BasketID  int64    `gorm:"column:basket_id;not null;uniqueIndex:basket_items_basket_product_key"`
	ProductID int64    `gorm:"column:product_id;not null;uniqueIndex:basket_items_basket_product_key"`
	Quantity  int      `gorm:"column:quantity;not null;default:1"`
	Product   *Product `gorm:"foreignKey:ProductID"`
}
