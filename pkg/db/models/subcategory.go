package models

// SubCategory always resolves to exactly one Category.
type SubCategory struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CategoryID      int64     `gorm:"column:category_id;not null;index"`
	SubcategoryName string    `gorm:"column:subcategory_name;size:32;not null;uniqueIndex"`
	Category        *Category `gorm:"foreignKey:CategoryID"`
	Products        []Product `gorm:"foreignKey:SubCategoryID;constraint:OnDelete:CASCADE"`
}
