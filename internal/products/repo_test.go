package products

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aselbek/bazar-backend/pkg/db/models"
	"github.com/aselbek/bazar-backend/pkg/enums"
	"github.com/aselbek/bazar-backend/pkg/pagination"
)

func TestListPriceBandFilter(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, sub := mustCreateCatalog(t, db, "Food", "Snacks")
	mustCreateProduct(t, db, sub, "Cheap", 100)
	mid := mustCreateProduct(t, db, sub, "Mid", 250)
	mustCreateProduct(t, db, sub, "Pricey", 500)

	gte := int64(150)
	lt := int64(500)
	records, _, count, err := repo.List(ctx, ListParams{
		SubCategory: &sub.ID,
		PriceGTE:    &gte,
		PriceLT:     &lt,
		Ordering:    enums.ProductOrderingPriceAsc,
	})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, mid.ID, records[0].ID)
	assert.Equal(t, int64(1), count)
}

func TestListOrderingStableWithTies(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, sub := mustCreateCatalog(t, db, "Food", "Snacks")
	a := mustCreateProduct(t, db, sub, "A", 300)
	b := mustCreateProduct(t, db, sub, "B", 100)
	c := mustCreateProduct(t, db, sub, "C", 300)

	records, _, _, err := repo.List(ctx, ListParams{Ordering: enums.ProductOrderingPriceAsc})
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, b.ID, records[0].ID)
	// ties broken by id ascending
	assert.Equal(t, a.ID, records[1].ID)
	assert.Equal(t, c.ID, records[2].ID)

	records, _, _, err = repo.List(ctx, ListParams{})
	require.NoError(t, err)
	// default order is insertion order
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{records[0].ID, records[1].ID, records[2].ID})
}

func TestListSearchNameAndArticle(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, sub := mustCreateCatalog(t, db, "Food", "Snacks")
	honey := mustCreateProduct(t, db, sub, "Mountain Honey", 900)
	mustCreateProduct(t, db, sub, "Green Tea", 400)

	records, _, _, err := repo.List(ctx, ListParams{Search: "hone"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, honey.ID, records[0].ID)

	// case-insensitive substring on the name
	records, _, _, err = repo.List(ctx, ListParams{Search: "HONEY"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	// prefix match on the article number
	prefix := strconv.FormatInt(records[0].ArticleNumber/100, 10)
	records, _, _, err = repo.List(ctx, ListParams{Search: prefix})
	require.NoError(t, err)
	assert.NotEmpty(t, records)
}

func TestListSearchTreatsWildcardsAsLiterals(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, sub := mustCreateCatalog(t, db, "Textile", "Fabric")
	cotton := mustCreateProduct(t, db, sub, "Cotton 100%", 700)
	mustCreateProduct(t, db, sub, "Juice 100", 300)
	underscored := mustCreateProduct(t, db, sub, "Size_L Shirt", 500)
	mustCreateProduct(t, db, sub, "SizeXL Shirt", 550)

	// % must match only the literal percent sign
	records, _, _, err := repo.List(ctx, ListParams{Search: "100%"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, cotton.ID, records[0].ID)

	// _ must match only the literal underscore
	records, _, _, err = repo.List(ctx, ListParams{Search: "Size_"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, underscored.ID, records[0].ID)
}

func TestListAggregatesAndImages(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, sub := mustCreateCatalog(t, db, "Food", "Snacks")
	product := mustCreateProduct(t, db, sub, "Rated", 700)
	bare := mustCreateProduct(t, db, sub, "Unrated", 100)

	userA := mustCreateUser(t, db, "Ada", "L")
	userB := mustCreateUser(t, db, "Grace", "H")
	require.NoError(t, db.Create(&models.Review{UserID: userA.ID, ProductID: product.ID, Rating: 4, Comment: "good"}).Error)
	require.NoError(t, db.Create(&models.Review{UserID: userB.ID, ProductID: product.ID, Rating: 5, Comment: "great"}).Error)
	require.NoError(t, db.Create(&models.ProductImage{ProductID: product.ID, ProductImage: "one.png"}).Error)
	require.NoError(t, db.Create(&models.ProductImage{ProductID: product.ID, ProductImage: "two.png"}).Error)

	records, images, _, err := repo.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	byID := map[int64]listRecord{}
	for _, record := range records {
		byID[record.ID] = record
	}
	assert.InDelta(t, 4.5, byID[product.ID].AvgRating, 0.001)
	assert.Equal(t, int64(2), byID[product.ID].ReviewCount)
	assert.Zero(t, byID[bare.ID].AvgRating)
	assert.Zero(t, byID[bare.ID].ReviewCount)
	assert.Equal(t, []string{"one.png", "two.png"}, images[product.ID])
}

func TestListPagination(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, sub := mustCreateCatalog(t, db, "Food", "Snacks")
	for i := 0; i < 5; i++ {
		mustCreateProduct(t, db, sub, "P", int64(100+i))
	}

	records, _, count, err := repo.List(ctx, ListParams{Page: pagination.Params{Page: 2, Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	require.Len(t, records, 2)
}

func TestFindDetailPreloadsChain(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, sub := mustCreateCatalog(t, db, "Food", "Snacks")
	product := mustCreateProduct(t, db, sub, "Detailed", 500)

	user := mustCreateUser(t, db, "Ada", "L")
	older := &models.Review{UserID: user.ID, ProductID: product.ID, Rating: 3, Comment: "ok", CreateDate: time.Now().Add(-time.Hour)}
	newer := &models.Review{UserID: user.ID, ProductID: product.ID, Rating: 5, Comment: "better", CreateDate: time.Now()}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	detail, err := repo.FindDetail(ctx, product.ID)
	require.NoError(t, err)

	require.NotNil(t, detail.SubCategory)
	require.NotNil(t, detail.SubCategory.Category)
	assert.Equal(t, "Snacks", detail.SubCategory.SubcategoryName)
	assert.Equal(t, "Food", detail.SubCategory.Category.CategoryName)

	require.Len(t, detail.Reviews, 2)
	assert.Equal(t, newer.ID, detail.Reviews[0].ID, "reviews must be newest-first")
	require.NotNil(t, detail.Reviews[0].User)
	assert.Equal(t, "Ada", detail.Reviews[0].User.FirstName)
}
