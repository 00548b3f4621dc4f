package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/internal/translations"
	"github.com/aselbek/bazar-backend/pkg/db/models"
	pkgerrors "github.com/aselbek/bazar-backend/pkg/errors"
)

func newTestService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		ProductRepo:      NewRepository(db),
		TranslationsRepo: translations.NewRepository(db),
		DefaultLocale:    "ru",
	})
	require.NoError(t, err)
	return svc
}

func TestGetNotFound(t *testing.T) {
	db := setupProductsTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.Get(context.Background(), 12345, "ru")
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestGetEmbedsCategoryThroughSubCategory(t *testing.T) {
	db := setupProductsTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	category, sub := mustCreateCatalog(t, db, "Food", "Snacks")
	other, _ := mustCreateCatalog(t, db, "Drinks", "Juices")
	product := mustCreateProduct(t, db, sub, "Chips", 300)

	// drift the stored category; the subcategory's parent must win
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("category_id", other.ID).Error)

	detail, err := svc.Get(ctx, product.ID, "ru")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, detail.SubCategory.ID)
	assert.Equal(t, category.ID, detail.Category.ID)
	assert.Equal(t, "Food", detail.Category.Name)
}

func TestGetLocalizedFields(t *testing.T) {
	db := setupProductsTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	category, sub := mustCreateCatalog(t, db, "Еда", "Снеки")
	product := mustCreateProduct(t, db, sub, "Чипсы", 300)

	rows := []models.Translation{
		{EntityType: models.TranslationEntityProduct, EntityID: product.ID, Locale: "en", Field: models.TranslationFieldName, Value: "Chips"},
		{EntityType: models.TranslationEntityProduct, EntityID: product.ID, Locale: "en", Field: models.TranslationFieldDescription, Value: "Crispy potato chips"},
		{EntityType: models.TranslationEntitySubCategory, EntityID: sub.ID, Locale: "en", Field: models.TranslationFieldName, Value: "Snacks"},
		{EntityType: models.TranslationEntityCategory, EntityID: category.ID, Locale: "en", Field: models.TranslationFieldName, Value: "Food"},
	}
	require.NoError(t, db.Create(&rows).Error)

	localized, err := svc.Get(ctx, product.ID, "en")
	require.NoError(t, err)
	assert.Equal(t, "Chips", localized.ProductName)
	assert.Equal(t, "Crispy potato chips", localized.ProductDescription)
	assert.Equal(t, "Snacks", localized.SubCategory.Name)
	assert.Equal(t, "Food", localized.Category.Name)

	fallback, err := svc.Get(ctx, product.ID, "ky")
	require.NoError(t, err)
	assert.Equal(t, "Чипсы", fallback.ProductName)

	defaultLocale, err := svc.Get(ctx, product.ID, "ru")
	require.NoError(t, err)
	assert.Equal(t, "Чипсы", defaultLocale.ProductName)
}

func TestListRoundsAvgRating(t *testing.T) {
	db := setupProductsTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, sub := mustCreateCatalog(t, db, "Food", "Snacks")
	product := mustCreateProduct(t, db, sub, "Rated", 500)

	for _, rating := range []int{5, 4, 4} {
		user := mustCreateUser(t, db, "R", "U")
		require.NoError(t, db.Create(&models.Review{UserID: user.ID, ProductID: product.ID, Rating: rating, Comment: "x"}).Error)
	}

	result, err := svc.List(ctx, ListParams{}, "ru")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	// mean of 5,4,4 is 4.333..., rounded to one decimal
	assert.InDelta(t, 4.3, result.Items[0].AvgRating, 0.0001)
	assert.Equal(t, int64(3), result.Items[0].ReviewCount)
	assert.NotNil(t, result.Items[0].Images)
}

func TestListEntriesBySubCategory(t *testing.T) {
	db := setupProductsTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, subA := mustCreateCatalog(t, db, "Food", "Snacks")
	_, subB := mustCreateCatalog(t, db, "Drinks", "Juices")
	inA := mustCreateProduct(t, db, subA, "Chips", 300)
	mustCreateProduct(t, db, subB, "Juice", 200)

	entries, err := svc.ListEntriesBySubCategory(ctx, subA.ID, "ru")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, inA.ID, entries[0].ID)
}
