package models

// Translation stores one localized field value for a catalog entity. The
// default-language value lives on the entity row itself; rows here override
// it for the negotiated locale.
type Translation struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	EntityType string `gorm:"column:entity_type;not null;uniqueIndex:translations_entity_locale_field_key"`
	EntityID   int64  `gorm:"column:entity_id;not null;uniqueIndex:translations_entity_locale_field_key"`
	Locale     string `gorm:"column:locale;not null;uniqueIndex:translations_entity_locale_field_key"`
	Field      string `gorm:"column:field;not null;uniqueIndex:translations_entity_locale_field_key"`
	Value      string `gorm:"column:value;not null"`
}

// Entity/field names used in the translations table.
const (
	TranslationEntityCategory    = "category"
	TranslationEntitySubCategory = "subcategory"
	TranslationEntityProduct     = "product"

	TranslationFieldName        = "name"
	TranslationFieldDescription = "description"
)
