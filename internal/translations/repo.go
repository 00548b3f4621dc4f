// Package translations resolves localized display fields for catalog
// entities. The default-language value lives on the entity row; rows in the
// translations table override it per locale.
package translations

import (
	"context"

	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/pkg/db/models"
)

// Repository reads localized field values.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a translations repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Fields maps field name to localized value for one entity.
type Fields map[string]string

// Resolve loads all translations for the given entities in one query and
// groups them by entity id. Missing rows simply stay absent; callers fall
// back to the default-language column.
func (r *Repository) Resolve(ctx context.Context, entityType string, entityIDs []int64, locale string) (map[int64]Fields, error) {
	result := make(map[int64]Fields)
	if len(entityIDs) == 0 || locale == "" {
		return result, nil
	}

	var rows []models.Translation
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND locale = ? AND entity_id IN ?", entityType, locale, entityIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		fields, ok := result[row.EntityID]
		if !ok {
			fields = make(Fields)
			result[row.EntityID] = fields
		}
		fields[row.Field] = row.Value
	}
	return result, nil
}

// ResolveOne is the single-entity convenience form of Resolve.
func (r *Repository) ResolveOne(ctx context.Context, entityType string, entityID int64, locale string) (Fields, error) {
	grouped, err := r.Resolve(ctx, entityType, []int64{entityID}, locale)
	if err != nil {
		return nil, err
	}
	fields, ok := grouped[entityID]
	if !ok {
		return Fields{}, nil
	}
	return fields, nil
}

// Value returns the localized value for a field, or the fallback when no
// translation exists.
func (f Fields) Value(field, fallback string) string {
	if f == nil {
		return fallback
	}
	if v, ok := f[field]; ok && v != "" {
		return v
	}
	return fallback
}
